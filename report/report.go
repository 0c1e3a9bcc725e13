package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	logV2 "github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Upload posts the diagnostics to the test addon's xcresult diagnostics
// endpoint. The printed report is the primary output of the step, an upload
// failure is surfaced to the caller but never fails the run.
func (d Diagnostics) Upload(apiToken, endpointBaseURL, appSlug, buildSlug string) error {
	logger := logV2.NewLogger()

	request := UploadRequest{
		Title:        "xcresult diagnostics",
		IssueLines:   d.IssueLines,
		FailingTests: d.FailingTests,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal diagnostics: %s", err)
	}

	var response UploadResponse
	url := fmt.Sprintf("%s/apps/%s/builds/%s/xcresult_diagnostics", endpointBaseURL, appSlug, buildSlug)
	if err := httpCall(apiToken, http.MethodPost, url, bytes.NewReader(body), &response, logger); err != nil {
		return err
	}

	logger.Debugf("Diagnostics report created: %s", response.ID)
	return nil
}

func httpCall(apiToken, method, url string, input io.Reader, output interface{}, logger logV2.Logger) error {
	if apiToken != "" {
		url = url + "/" + apiToken
	}
	req, err := retryablehttp.NewRequest(method, url, input)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	client := retryhttp.NewClient(logger)
	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warnf("Failed to close body: %s", err)
		}
	}()

	if resp.StatusCode < 200 || 299 < resp.StatusCode {
		bodyData, err := io.ReadAll(resp.Body)
		if err != nil {
			logger.Warnf("Failed to read response: %s", err)
			return fmt.Errorf("unsuccessful status code: %d", resp.StatusCode)
		}
		return fmt.Errorf("unsuccessful status code: %d, response: %s", resp.StatusCode, bodyData)
	}

	if output != nil {
		return json.NewDecoder(resp.Body).Decode(&output)
	}
	return nil
}
