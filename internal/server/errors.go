// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package server

import "errors"

var (
	errNoAddressConfigured = errors.New("no HTTP address configured")
)
