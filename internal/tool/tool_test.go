// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script repeats each character's signature line so every split leaves
// training data behind.
func script(times int) string {
	var b strings.Builder
	for i := 0; i < times; i++ {
		b.WriteString("FRASIER: I'm listening Seattle\n")
		b.WriteString("NILES: sherry brother opera\n")
	}
	return b.String()
}

const yamlTranscript = `- character: Frasier
  line: I'm listening Seattle
- character: Niles
  line: sherry brother opera
- character: Caller
  line: sherry please
  role: guest
`

func TestClassifyLine(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputClassifyLine
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputClassifyLine)
	}{
		{
			name:        "empty content returns error",
			input:       InputClassifyLine{Line: "sherry"},
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name:        "empty line returns error",
			input:       InputClassifyLine{Content: script(2)},
			wantErr:     true,
			errContains: "line is required",
		},
		{
			name: "script transcript predicts the speaker",
			input: InputClassifyLine{
				Content:  script(3),
				Format:   "script",
				SourceID: "pilot.txt",
				Line:     "more sherry",
				Seed:     7,
			},
			validateOutput: func(t *testing.T, output OutputClassifyLine) {
				assert.Equal(t, "NILES", output.Character)
				assert.Equal(t, "script", output.ReaderUsed)
				assert.Equal(t, 6, output.TotalRows)
				require.Len(t, output.Scores, 2)
				assert.Equal(t, "FRASIER", output.Scores[0].Character)
				assert.Greater(t, output.Score, 0.0)
			},
		},
		{
			name: "yaml transcript ignores guest rows",
			input: InputClassifyLine{
				Content: yamlTranscript,
				Line:    "Seattle",
			},
			validateOutput: func(t *testing.T, output OutputClassifyLine) {
				assert.Equal(t, "Frasier", output.Character)
				assert.Equal(t, "yaml", output.ReaderUsed)
				assert.Equal(t, 3, output.TotalRows)
				assert.Len(t, output.Scores, 2)
			},
		},
		{
			name: "word bounds that exclude everything",
			input: InputClassifyLine{
				Content:  script(2),
				Line:     "sherry",
				MinWords: 10,
			},
			wantErr:     true,
			errContains: "empty corpus",
		},
		{
			name: "unsupported format returns error",
			input: InputClassifyLine{
				Content: "%PDF-1.4 binary",
				Format:  "pdf",
				Line:    "hello",
			},
			wantErr:     true,
			errContains: "unsupported corpus format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := ClassifyLine(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestEvaluateCorpus(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputEvaluateCorpus
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputEvaluateCorpus)
	}{
		{
			name:        "empty content returns error",
			input:       InputEvaluateCorpus{},
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name: "fractional split reports every character",
			input: InputEvaluateCorpus{
				Content:  script(8),
				SourceID: "pilot.txt",
				Seed:     11,
			},
			validateOutput: func(t *testing.T, output OutputEvaluateCorpus) {
				assert.Equal(t, "script", output.ReaderUsed)
				assert.Equal(t, "pilot.txt", output.Report.Source)
				assert.Equal(t, "fractional", output.Report.Policy)
				require.Len(t, output.Report.Characters, 2)
				for _, c := range output.Report.Characters {
					assert.Equal(t, 2, c.Total)
					assert.Equal(t, 1.0, c.Accuracy)
				}
			},
		},
		{
			name: "strict split with a character filter",
			input: InputEvaluateCorpus{
				Content:        script(5),
				Seed:           11,
				StrictTestSize: 1,
				Characters:     []string{"NILES", "ROZ"},
			},
			validateOutput: func(t *testing.T, output OutputEvaluateCorpus) {
				assert.Equal(t, "strict", output.Report.Policy)
				require.Len(t, output.Report.Characters, 2)
				assert.Equal(t, 1, output.Report.Characters[0].Total)
				assert.True(t, output.Report.Characters[1].Skipped)
			},
		},
		{
			name: "invalid test size",
			input: InputEvaluateCorpus{
				Content:  script(2),
				TestSize: 1.5,
			},
			wantErr:     true,
			errContains: "invalid experiment config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := EvaluateCorpus(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestNewServer_ListsTools(t *testing.T) {
	ctx := context.Background()
	server := NewServer("test")

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer clientSession.Close()

	res, err := clientSession.ListTools(ctx, nil)
	require.NoError(t, err)

	var names []string
	for _, tl := range res.Tools {
		names = append(names, tl.Name)
	}
	assert.ElementsMatch(t, []string{"classify_line", "evaluate_corpus"}, names)
}
