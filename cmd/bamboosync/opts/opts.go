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

package opts

import (
	"github.com/hrtools/bamboosync/pkg/bamboohr"
	"github.com/hrtools/bamboosync/pkg/config"
	"github.com/hrtools/bamboosync/pkg/log"
	"github.com/hrtools/bamboosync/pkg/sync"
	"gitlab.com/tozd/go/errors"
)

// 📦 RootOpts carries the dependencies shared by all commands
type RootOpts struct {
	Settings *config.Settings
	Reporter *log.Logger
}

// 🏭 NewSyncer builds a credentialed Syncer from the environment
func (o *RootOpts) NewSyncer() (*sync.Syncer, error) {
	creds, err := bamboohr.CredentialsFromEnv()
	if err != nil {
		return nil, errors.Errorf("loading credentials: %w", err)
	}

	syncer := sync.New(o.Settings)
	syncer.SetCredentials(creds)
	return syncer, nil
}
