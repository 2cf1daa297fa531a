// Copyright 2025 Poiesic Systems
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


// Package server exposes the retrieval pipeline over HTTP.
//
// The server is a thin boundary: it validates and decodes requests, calls
// the engine's query pipeline, and maps domain errors to status codes.
// Validation failures map to 400, everything else to 500. No retrieval
// logic lives here.
package server
