/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errFieldRequired   = errors.New("wajib diisi")
	errFieldNotNumeric = errors.New("harus berupa angka")
	errFieldOutOfRange = errors.New("di luar rentang yang diizinkan")
)
