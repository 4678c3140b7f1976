/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package errs holds the sentinel errors for the fatal error kinds in the
// ingestion taxonomy, so callers up and down the pipeline can compare with
// errors.Is instead of string matching.
package errs

import "errors"

var (
	// ErrMissingInput is returned when a required input file is absent.
	ErrMissingInput = errors.New("missing input file")
	// ErrMalformedNetLine is returned when a design.net line does not parse.
	ErrMalformedNetLine = errors.New("malformed design.net line")
	// ErrMalformedAttribute is returned when a design.are line does not parse.
	ErrMalformedAttribute = errors.New("malformed design.are line")
	// ErrUnknownTDMID is returned when a net edge references an undefined TDM id.
	ErrUnknownTDMID = errors.New("unknown tdm id")
)
