// SPDX-License-Identifier: Apache-2.0

// Package readers turns raw transcript documents into corpus rows.
package readers

import "github.com/speakerlab/whosaid/internal/corpus"

// DefaultLoader builds a Loader with every reader registered. Order
// matters: the structured formats are probed before the looser script and
// CSV heuristics.
func DefaultLoader(csv *CSVReader) *corpus.Loader {
	if csv == nil {
		csv = NewCSVReader()
	}
	return corpus.NewLoader(
		NewYAMLReader(),
		NewScriptReader(),
		csv,
	)
}
