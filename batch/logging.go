/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package batch

import "github.com/humaidq/stuntcheck/logging"

var logger = logging.Logger(logging.SourceBatch)
