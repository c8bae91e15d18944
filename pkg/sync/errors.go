// Copyright 2025 hrtools LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sync

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ❌ ErrMissingCredentials is returned when a sync entry point is invoked
// before credentials were loaded
var ErrMissingCredentials = errors.New("bamboohr credentials have not been loaded")

// 🔑 CredentialError reports invalid or expired credentials (HTTP 401)
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("bamboohr credentials appear to be invalid or expired: %v", e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// 🚫 PermissionError reports an API key without sufficient permissions (HTTP 403)
type PermissionError struct {
	Err error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("bamboohr api key does not have sufficient permissions: %v", e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// ⚠️ ValidationError reports any other settings-validation failure
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validating bamboohr settings: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
