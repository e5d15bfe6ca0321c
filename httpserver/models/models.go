package models

import "github.com/n0rdy/mockdata/refdata"

// responses models:

type ErrorResponse struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty" xml:"message,omitempty"`
	Code    string `json:"code,omitempty" yaml:"code,omitempty" xml:"code,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status" yaml:"status" xml:"status"`
}

type InfoResponse struct {
	Source string         `json:"source" yaml:"source" xml:"source"`
	Counts refdata.Counts `json:"counts" yaml:"counts" xml:"counts"`
}
