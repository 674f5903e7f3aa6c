/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"

	. "github.com/IBM/sss-recon/types"
)

const ruleWidth = 60

type summaryLine struct {
	name   string
	secret *big.Int
	err    error
}

// Console renders reconstruction outcomes as human readable text.
type Console struct {
	lock    sync.Mutex
	summary []summaryLine
	Out     io.Writer
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header writes the banner printed before the first test case.
func (c *Console) Header() {
	c.lock.Lock()
	defer c.lock.Unlock()

	fmt.Fprintln(c.Out, "Shamir's Secret Sharing - Majority Voting Approach")
	fmt.Fprintln(c.Out, rule())
}

// Report writes the decoded shares, a preview of the tested combinations and the vote.
func (c *Console) Report(name string, out *Outcome) {
	c.lock.Lock()
	defer c.lock.Unlock()

	w := c.Out
	tc := out.Case

	fmt.Fprintf(w, "\nProcessing %s:\n", name)
	fmt.Fprintf(w, "Total points available: %d, Need: %d points for degree %d polynomial\n", tc.N, tc.K, tc.Degree())

	fmt.Fprintln(w, "\nAll decoded points:")
	for i, s := range tc.Shares {
		fmt.Fprintf(w, "Point %d: (%d, %s)\n", i+1, s.X, s.Y)
	}

	fmt.Fprintf(w, "\nTesting all %d combinations of %d points:\n", out.Tested, tc.K)
	for _, cand := range out.Preview {
		fmt.Fprintf(w, "Combination %d: %s\n", cand.Index+1, joinShares(cand.Shares))
		if cand.Reliable() {
			fmt.Fprintf(w, "  Secret: %s\n", cand.Secret)
		} else {
			fmt.Fprintf(w, "  Rejected: %v\n", cand.Err)
		}
	}

	if remaining := out.Tested - len(out.Preview); remaining > 0 {
		fmt.Fprintf(w, "... (%d more combinations tested)\n", remaining)
	}

	if out.Rejected > 0 {
		fmt.Fprintf(w, "%d of %d combinations rejected as inconsistent\n", out.Rejected, out.Tested)
	}

	v := out.Vote
	fmt.Fprintln(w, "\nMajority Voting Results:")
	fmt.Fprintf(w, "Secret %s appears %d/%d times (%.1f%%)\n", v.Secret, v.Count, v.Total, v.Confidence()*100)
	fmt.Fprintf(w, "Final Secret (majority): %s\n", v.Secret)

	c.summary = append(c.summary, summaryLine{name: name, secret: v.Secret})
}

// Failed records a test case that could not be reconstructed.
func (c *Console) Failed(name string, err error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	fmt.Fprintf(c.Out, "\nProcessing %s:\nFailed: %v\n", name, err)
	c.summary = append(c.summary, summaryLine{name: name, err: err})
}

// Summary writes the secret of every test case reported so far.
func (c *Console) Summary() {
	c.lock.Lock()
	defer c.lock.Unlock()

	fmt.Fprintln(c.Out, "\n"+rule())
	fmt.Fprintln(c.Out, "FINAL RESULTS (MAJORITY VOTING):")
	for _, line := range c.summary {
		if line.err != nil {
			fmt.Fprintf(c.Out, "%s: failed\n", line.name)
			continue
		}
		fmt.Fprintf(c.Out, "%s Secret: %s\n", line.name, line.secret)
	}
}

func joinShares(shares []Share) string {
	parts := make([]string, len(shares))
	for i, s := range shares {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}
