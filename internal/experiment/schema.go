// SPDX-License-Identifier: Apache-2.0

package experiment

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

const configSchema = `
#Config: {
	corpus: {
		path:      string
		format:    "" | "csv" | "tsv" | "yaml" | "yml" | "json" | "script" | "transcript" | "txt"
		role:      string & !=""
		min_words: int & >=0
		max_words: int & >=0
		normalize: bool
		header:    bool
		columns: {
			character: int & >=0
			line:      int & >=0
			role:      int & >=-1
		}
	}
	split: {
		policy:           "" | "fractional" | "strict" | "strict-filtered"
		test_size:        number & >=0 & <1
		strict_test_size: int & >=0
		min_test_words:   int & >=0
	}
	seed:        int & >=0
	characters?: null | [...string]
	workers:     int & >=0
}
`

func validateSchema(c Config) error {
	cctx := cuecontext.New()
	schema := cctx.CompileString(configSchema)
	if err := schema.Err(); err != nil {
		return err
	}
	v := schema.LookupPath(cue.ParsePath("#Config")).Unify(cctx.Encode(c))
	return v.Validate(cue.Concrete(true))
}
