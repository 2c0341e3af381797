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

package parse

import "fmt"

// AnomalyError reports a parse-time assertion failure that indicates an
// architecture coverage gap (e.g. a relocation kind the descriptor doesn't
// recognize), not a data error to be guessed past.
type AnomalyError struct {
	Reason string
}

func (e *AnomalyError) Error() string {
	return fmt.Sprintf("parse anomaly: %s", e.Reason)
}
