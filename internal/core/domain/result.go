// Copyright 2025.
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

package domain

// RunState follows a run from start to its terminal outcome.
type RunState string

const (
	StateNotStarted   RunState = "not_started"
	StateWritingFiles RunState = "writing_files"
	StateCompleted    RunState = "completed"
	StateFailed       RunState = "failed"
)

// Result summarizes one generation run.
type Result struct {
	RunID     string
	Requested int
	Written   int
	Files     []string
	Bytes     int64
	State     RunState

	// DirNonEmpty is the legacy completion signal: the output directory
	// holds at least one entry after the run. It ignores which files were
	// written and is kept for comparison only.
	DirNonEmpty bool
}

// Success reports whether every requested file was written and there was
// at least one.
func (r Result) Success() bool {
	return r.Written > 0 && r.Written == r.Requested
}

// Started reports whether the run reached the write phase. A zero Result
// counts as not started.
func (r Result) Started() bool {
	switch r.State {
	case StateWritingFiles, StateCompleted, StateFailed:
		return true
	}
	return false
}
