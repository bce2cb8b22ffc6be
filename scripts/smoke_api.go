package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // uploads can be slow, no timeout
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func uploadFile(path string) (*http.Response, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", path)
	if err != nil {
		return nil, nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, nil, err
	}
	writer.Close()

	req, err := http.NewRequest("POST", baseURL+"/document/v1/upload", &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Document API Smoke Test\n")

	if len(os.Args) < 2 {
		color.Red("Usage: go run scripts/smoke_api.go <document.pdf>")
		os.Exit(1)
	}

	// 1. Upload a document
	color.Yellow("\n1. Upload Document")
	resp, body, err := uploadFile(os.Args[1])
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var uploadResp map[string]interface{}
	json.Unmarshal(body, &uploadResp)
	prettyPrint(uploadResp)

	// 2. Fetch pages with a search query
	color.Yellow("\n2. Get Pages (q=agreement)")
	resp, body, err = sendRequest("GET", "/document/v1/pages?q=agreement", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var pagesResp map[string]interface{}
	json.Unmarshal(body, &pagesResp)
	prettyPrint(pagesResp)

	// 3. Analytics overview
	color.Yellow("\n3. Analytics Overview")
	resp, body, err = sendRequest("GET", "/analytics/v1/overview", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var analyticsResp map[string]interface{}
	json.Unmarshal(body, &analyticsResp)
	prettyPrint(analyticsResp)

	// 4. AI summary of the first page
	color.Yellow("\n4. Summarize Page 0")
	resp, body, err = sendRequest("POST", "/insight/v1/summarize", map[string]interface{}{"page_index": 0})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var insightResp map[string]interface{}
	json.Unmarshal(body, &insightResp)
	prettyPrint(insightResp)

	// 5. History
	color.Yellow("\n5. Get History")
	resp, body, err = sendRequest("GET", "/history/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var historyResp map[string]interface{}
	json.Unmarshal(body, &historyResp)
	prettyPrint(historyResp)

	color.Cyan("\n✨ Smoke test finished")
}
