// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when the dev API has no listen address
// and therefore no HTTP handler to serve.
var errNoServersAreCreated = errors.New("no dev API server is configured")
