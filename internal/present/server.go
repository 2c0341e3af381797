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

package present

import (
	"fmt"
	"net/http"
)

// Server serves the most recent HTML render and re-renders on each request,
// for the optional browser UI described in spec §6's wire format.
type Server struct {
	render Render
}

func NewServer(render Render) *Server {
	return &Server{render: render}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := s.render()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, out)
}

// ListenAndServe blocks serving the current render on addr until the server
// errors or the process exits; each request calls render afresh, so a
// render that re-reads its inputs makes each request reflect the latest
// input.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
