// Copyright 2025 asmdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package differ

import (
	"errors"
	"fmt"

	"github.com/gorse-io/asmdiff/internal/arch"
	"github.com/gorse-io/asmdiff/internal/parse"
)

// ConfigError reports a fatal, before-any-diffing configuration problem:
// unknown architecture or an unsupported flag combination.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.Reason)
}

// ParseAnomalyError reports a parse-time assertion failure that indicates an
// architecture coverage gap (e.g. a relocation kind the descriptor doesn't
// know), rather than a user-facing mistake.
type ParseAnomalyError struct {
	Reason string
}

func (e *ParseAnomalyError) Error() string {
	return fmt.Sprintf("parse anomaly: %s", e.Reason)
}

// wrapParseError promotes a parse.AnomalyError to a *ParseAnomalyError so
// callers of Run only need to type-switch on this package's error types.
// Any other parse error (malformed config) passes through unchanged.
func wrapParseError(err error) error {
	var pe *parse.AnomalyError
	if errors.As(err, &pe) {
		return &ParseAnomalyError{Reason: pe.Reason}
	}
	return err
}

// Validate resolves cfg.Arch and rejects unsupported flag combinations,
// returning the resolved descriptor on success. All validation happens
// before any diffing, per the error taxonomy's first category.
func (c Config) Validate() (*arch.Descriptor, error) {
	d, err := arch.Get(c.Arch)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	if c.BaseShift != 0 && c.DiffObj {
		return nil, &ConfigError{Reason: "base-shift is incompatible with object-file mode"}
	}
	if c.Threeway != ThreewayNone && !c.Watch {
		return nil, &ConfigError{Reason: "threeway rendering requires watch mode"}
	}
	if c.End != "" && c.DiffObj {
		return nil, &ConfigError{Reason: "end address is incompatible with object-file mode"}
	}
	return d, nil
}
