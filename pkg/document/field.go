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

import (
	"fmt"
	"math"
	"strconv"
)

// 🔀 Field is a discriminated union over the polymorphic values the
// time-off API returns: the same field may arrive as a plain scalar or as
// a structured sub-mapping depending on tenant and API version. Normalize
// once through FieldOf, then read with Str or Get.
type Field struct {
	scalar     string
	structured map[string]any
}

// 🏭 FieldOf normalizes a raw value into a Field
func FieldOf(v any) Field {
	if m, ok := v.(map[string]any); ok {
		return Field{structured: m}
	}
	return Field{scalar: Stringify(v)}
}

// 🔍 IsStructured reports whether the value arrived as a sub-mapping
func (f Field) IsStructured() bool {
	return f.structured != nil
}

// 📝 Str returns the scalar value; empty for structured fields
func (f Field) Str() string {
	return f.scalar
}

// 📝 Get returns the named entry of a structured field; empty for scalars
// and missing keys
func (f Field) Get(key string) string {
	if f.structured == nil {
		return ""
	}
	return Stringify(f.structured[key])
}

// 📝 StrOr returns the scalar value, or the named entry when structured
func (f Field) StrOr(key string) string {
	if f.IsStructured() {
		return f.Get(key)
	}
	return f.scalar
}

// 🧵 Stringify renders a JSON-decoded scalar as a string. nil becomes "";
// whole numbers drop the decimal point.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
