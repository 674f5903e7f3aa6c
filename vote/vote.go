/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vote

import (
	"math/big"

	. "github.com/IBM/sss-recon/types"
)

type tally struct {
	value *big.Int
	count int
}

// Ballot counts occurrences of candidate secrets by value.
// The zero value is an empty ballot.
type Ballot struct {
	tallies    map[string]*tally
	order      []*tally
	added      int
	unreliable int
}

func (b *Ballot) initIfNeeded() {
	if b.tallies == nil {
		b.tallies = make(map[string]*tally)
	}
}

// Add counts one occurrence of v.
func (b *Ballot) Add(v *big.Int) {
	b.initIfNeeded()

	key := v.Text(36)
	t, exists := b.tallies[key]
	if !exists {
		t = &tally{value: v}
		b.tallies[key] = t
		b.order = append(b.order, t)
	}
	t.count++
	b.added++
}

// Abstain counts a candidate that was tested but may not be tallied.
func (b *Ballot) Abstain() {
	b.unreliable++
}

// Total is the number of candidates added or abstained.
func (b *Ballot) Total() int {
	return b.added + b.unreliable
}

// Result selects the value with the strictly highest count.
// A tie is won by the value that was added first.
func (b *Ballot) Result() (VoteResult, error) {
	if b.Total() == 0 {
		return VoteResult{}, NewConfigError("no candidates to vote on")
	}

	if len(b.order) == 0 {
		return VoteResult{Total: b.Total()}, ErrNoConsensus
	}

	winner := b.order[0]
	for _, t := range b.order[1:] {
		if t.count > winner.count {
			winner = t
		}
	}

	return VoteResult{
		Secret: new(big.Int).Set(winner.value),
		Count:  winner.count,
		Total:  b.Total(),
	}, nil
}

// Vote returns the most frequent value among values.
func Vote(values []*big.Int) (VoteResult, error) {
	var b Ballot
	for i, v := range values {
		if v == nil {
			return VoteResult{}, NewConfigError("candidate %d is nil", i)
		}
		b.Add(v)
	}
	return b.Result()
}

// Candidates votes on the secrets of the reliable candidates.
// Unreliable candidates count towards the total but support no value.
func Candidates(cands []Candidate) (VoteResult, error) {
	var b Ballot
	for _, c := range cands {
		if c.Reliable() {
			b.Add(c.Secret)
		} else {
			b.Abstain()
		}
	}
	return b.Result()
}
