package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) CreateFieldDefinition(body map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/custom-fields/definitions", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) DeleteFieldDefinition(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/custom-fields/definitions/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateFieldTab(body map[string]any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/custom-fields/tabs", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) DeleteFieldTab(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/custom-fields/tabs/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) GetFormStructure(entityType, entityID string) (*http.Response, error) {
	query := url.Values{}
	query.Set("entity_type", entityType)
	query.Set("entity_id", entityID)
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields/structure?%s", d.baseURL, query.Encode()))
}

func (d *APIDriver) ValidateValues(entityType, entityID string, values map[string]string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"entity_type": entityType,
		"entity_id":   entityID,
		"values":      values,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/custom-fields/validate", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) SubmitValues(entityType, entityID, instanceID string, values map[string]string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"entity_type": entityType,
		"entity_id":   entityID,
		"values":      values,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/custom-fields/instances/%s/values", d.baseURL, instanceID), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetSubmittedValues(entityType, entityID, instanceID string) (*http.Response, error) {
	query := url.Values{}
	query.Set("entity_type", entityType)
	query.Set("entity_id", entityID)
	return d.client.Get(fmt.Sprintf("%s/v1/custom-fields/instances/%s/values?%s", d.baseURL, instanceID, query.Encode()))
}
