// Copyright 2026 PairBudget Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/pairbudget/partner-service/cmd"

func main() {
	cmd.Execute()
}
