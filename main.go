package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitrise-io/go-steputils/stepconf"
	"github.com/bitrise-io/go-steputils/tools"
	"github.com/bitrise-io/go-utils/log"
	"github.com/bitrise-steplib/steps-xcresult-diagnostics/report"
	"github.com/bitrise-steplib/steps-xcresult-diagnostics/xcresult"
	units "github.com/docker/go-units"
)

// Config ...
type Config struct {
	XcresultJSONPath   string `env:"xcresult_json_path,required"`
	XcresultBundlePath string `env:"xcresult_bundle_path,required"`
	AddonAPIBaseURL    string `env:"addon_api_base_url"`
	AddonAPIToken      string `env:"addon_api_token"`
	AppSlug            string `env:"BITRISE_APP_SLUG"`
	BuildSlug          string `env:"BITRISE_BUILD_SLUG"`
	DebugMode          bool   `env:"debug_mode,opt[true,false]"`
}

func fail(format string, v ...interface{}) {
	log.Errorf(format, v...)
	os.Exit(1)
}

func main() {
	var config Config
	if err := stepconf.Parse(&config); err != nil {
		fail("Issue with input: %s", err)
	}

	stepconf.Print(config)
	fmt.Println()
	log.SetEnableDebugLog(config.DebugMode)

	record := loadRecord(config.XcresultJSONPath)
	if record == nil {
		return
	}

	logBundleFormatVersion(config.XcresultBundlePath)

	fmt.Println()
	log.Infof("Issue summaries")

	var diagnostics report.Diagnostics
	if len(record.Actions.Values) == 0 {
		log.Printf("No actions found in xcresult.")
	}

	issueLines, found := collectIssues(*record)
	for _, line := range issueLines {
		log.Printf("%s", line)
	}
	if !found {
		log.Printf("No issue summaries found in xcresult.")
	}
	diagnostics.IssueLines = issueLines

	fmt.Println()
	log.Infof("Failing tests")

	testsRef := record.TestsRef()
	if testsRef == "" {
		log.Printf("No testsRef found in xcresult.")
		finish(config, diagnostics)
		return
	}

	testsData := resolveTestsRef(config.XcresultBundlePath, testsRef)
	if testsData == nil {
		finish(config, diagnostics)
		return
	}

	diagnostics.FailingTests = xcresult.FailingTests(testsData)
	if len(diagnostics.FailingTests) > 0 {
		log.Printf("Failing tests (testsRef):")
		for _, name := range diagnostics.FailingTests {
			log.Printf("- %s", name)
		}
	} else {
		log.Printf("No failing tests found in testsRef.")
	}

	finish(config, diagnostics)
}

// collectIssues walks every action's result and build result in order and
// gathers the printable issue lines, reporting whether any action carried
// at least one issue summary.
func collectIssues(record xcresult.ActionsInvocationRecord) (lines []string, found bool) {
	for _, action := range record.Actions.Values {
		for _, issues := range []xcresult.Issues{action.ActionResult.Issues, action.BuildResult.Issues} {
			lines = append(lines, issues.Lines()...)
			found = found || issues.HasIssues()
		}
	}
	return
}

func loadRecord(pth string) *xcresult.ActionsInvocationRecord {
	record, err := xcresult.Load(pth)
	if err != nil {
		log.Warnf("%s", err)
		return nil
	}
	if record == nil {
		log.Printf("xcresult JSON is empty.")
		return nil
	}

	if info, err := os.Stat(pth); err == nil {
		log.Debugf("Parsed xcresult JSON (%s)", units.HumanSize(float64(info.Size())))
	}
	return record
}

func logBundleFormatVersion(bundlePth string) {
	version, err := xcresult.BundleFormatVersion(bundlePth)
	if err != nil {
		log.Debugf("Failed to read bundle format version: %s", err)
		return
	}
	log.Debugf("xcresult bundle format version: %d", version)
}

func resolveTestsRef(bundlePth, testsRef string) interface{} {
	if !xcresult.IsXcresulttoolAvailable() {
		log.Warnf("xcresulttool is not available, skipping testsRef %s", testsRef)
		return nil
	}

	node, err := xcresult.ResolveTestsRef(bundlePth, testsRef)
	if err != nil {
		log.Warnf("xcresulttool failed to read testsRef %s: %s", testsRef, err)
		return nil
	}
	return node
}

func finish(config Config, diagnostics report.Diagnostics) {
	exportFailingTests(diagnostics.FailingTests)
	uploadDiagnostics(config, diagnostics)
}

func exportFailingTests(failingTests []string) {
	if err := tools.ExportEnvironmentWithEnvman("XCRESULT_FAILING_TEST_COUNT", strconv.Itoa(len(failingTests))); err != nil {
		log.Warnf("Failed to export XCRESULT_FAILING_TEST_COUNT: %s", err)
	}
	if err := tools.ExportEnvironmentWithEnvman("XCRESULT_FAILING_TESTS", strings.Join(failingTests, "\n")); err != nil {
		log.Warnf("Failed to export XCRESULT_FAILING_TESTS: %s", err)
	}
}

func uploadDiagnostics(config Config, diagnostics report.Diagnostics) {
	if config.AddonAPIToken == "" {
		return
	}

	fmt.Println()
	log.Infof("Upload xcresult diagnostics")

	if err := diagnostics.Upload(config.AddonAPIToken, config.AddonAPIBaseURL, config.AppSlug, config.BuildSlug); err != nil {
		log.Warnf("Failed to upload diagnostics: %s", err)
	} else {
		log.Donef("Success")
	}
}
