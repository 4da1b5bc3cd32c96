package aggregator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mirenbz/dna/aggregator"
	"github.com/mirenbz/dna/pmatrix"
	"github.com/mirenbz/dna/statement"
)

func TestOneModeCongruenceAgreement(t *testing.T) {
	// Two actors who always pick the same qualifier on every shared
	// concept should score positively on congruence and zero on conflict.
	v1 := []string{"alice", "bob"}
	v2 := []string{"topic"}
	q := []string{"pro", "con"}
	buckets := pmatrix.NewBucketArray(v1, v2, q)

	st := statement.New("1", time.Now(), map[string]statement.Value{
		"variable1": statement.StringValue("alice"),
		"variable2": statement.StringValue("topic"),
		"qualifier": statement.StringValue("pro"),
	})
	require.NoError(t, buckets.Add("alice", "topic", "pro", st))
	require.NoError(t, buckets.Add("bob", "topic", "pro", st))

	sk := pmatrix.Skeleton{Labels: v1}
	agg := aggregator.OneMode{}

	g, err := agg.Build(sk, buckets, pmatrix.RoleCongruence)
	require.NoError(t, err)
	v, err := g.At(0, 1)
	require.NoError(t, err)
	require.Greater(t, v, 0.0)

	c, err := agg.Build(sk, buckets, pmatrix.RoleConflict)
	require.NoError(t, err)
	cv, err := c.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, cv)
}

func TestOneModeConflictDisagreement(t *testing.T) {
	v1 := []string{"alice", "bob"}
	v2 := []string{"topic"}
	q := []string{"pro", "con"}
	buckets := pmatrix.NewBucketArray(v1, v2, q)

	st := statement.New("1", time.Now(), map[string]statement.Value{})
	require.NoError(t, buckets.Add("alice", "topic", "pro", st))
	require.NoError(t, buckets.Add("bob", "topic", "con", st))

	sk := pmatrix.Skeleton{Labels: v1}
	agg := aggregator.OneMode{}

	c, err := agg.Build(sk, buckets, pmatrix.RoleConflict)
	require.NoError(t, err)
	cv, err := c.At(0, 1)
	require.NoError(t, err)
	require.Greater(t, cv, 0.0)

	g, err := agg.Build(sk, buckets, pmatrix.RoleCongruence)
	require.NoError(t, err)
	gv, err := g.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, gv)
}

func TestOneModeIsolateConceptExcluded(t *testing.T) {
	// A concept neither actor touched must not drag the average toward
	// zero. With a single shared concept the result equals that concept's
	// raw agreement, not agreement/2.
	v1 := []string{"alice", "bob"}
	v2 := []string{"shared", "untouched"}
	q := []string{""}
	buckets := pmatrix.NewBucketArray(v1, v2, q)

	st := statement.New("1", time.Now(), map[string]statement.Value{})
	require.NoError(t, buckets.Add("alice", "shared", "", st))
	require.NoError(t, buckets.Add("bob", "shared", "", st))

	sk := pmatrix.Skeleton{Labels: v1}
	agg := aggregator.OneMode{}
	g, err := agg.Build(sk, buckets, pmatrix.RoleCongruence)
	require.NoError(t, err)
	v, err := g.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestOneModeNilBucketsReturnsZeroMatrix(t *testing.T) {
	sk := pmatrix.Skeleton{Labels: []string{"alice", "bob"}}
	agg := aggregator.OneMode{}
	m, err := agg.Build(sk, nil, pmatrix.RoleCongruence)
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}
