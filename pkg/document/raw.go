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

package document

import "strings"

// 👤 RawEmployee is a directory listing entry, as decoded JSON
type RawEmployee map[string]any

// 📇 RawEmployeeDetail holds the per-employee detail fields fetched in a
// second round-trip. Absence is represented by an empty map, never nil
// dereferences downstream.
type RawEmployeeDetail map[string]any

// 🏖️ RawTimeOff is one time-off request. Its type/status/notes/amount
// fields are polymorphic; read them through FieldOf.
type RawTimeOff map[string]any

// 📝 Str returns the named field as a string, empty when absent
func (e RawEmployee) Str(key string) string {
	return Stringify(e[key])
}

// 🆔 ID returns the employee's natural id
func (e RawEmployee) ID() string {
	return e.Str("id")
}

// 📛 Name returns the employee's full name
func (e RawEmployee) Name() string {
	return strings.TrimSpace(e.Str("firstName") + " " + e.Str("lastName"))
}

// 📝 Str returns the named detail field as a string, empty when absent
func (d RawEmployeeDetail) Str(key string) string {
	return Stringify(d[key])
}

// 📝 Str returns the named field as a string, empty when absent
func (r RawTimeOff) Str(key string) string {
	return Stringify(r[key])
}

// 🔀 Field returns the named field as a scalar-or-structured union
func (r RawTimeOff) Field(key string) Field {
	return FieldOf(r[key])
}

// 🏷️ Type extracts the time-off type name from either shape
func (r RawTimeOff) Type() string {
	return r.Field("type").StrOr("name")
}

// 🏷️ Status extracts the status string from either shape
func (r RawTimeOff) Status() string {
	return r.Field("status").StrOr("status")
}
