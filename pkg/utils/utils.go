/*
Copyright 2025.

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

package utils

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// MapToStruct converts a generic configuration map into a typed struct by
// round-tripping through YAML. target must be a pointer.
func MapToStruct(input map[string]interface{}, target interface{}) error {
	raw, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration map: %w", err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal configuration into %T: %w", target, err)
	}
	return nil
}
