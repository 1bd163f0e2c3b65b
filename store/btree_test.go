package store

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// and general fuzzing
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results
	// that are writen to it
	k, v := []byte("french"), []byte("fry")
	assertGetHas(t, base, k, nil, false)
	require.NoError(t, base.Set(k, v))
	assertGetHas(t, base, k, v, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assertGetHas(t, cache, k2, nil, false)
	require.NoError(t, cache.Set(k2, v2))
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assertGetHas(t, base, k, v, true)
	assertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	assertGetHas(t, c2, k, v, true)
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	assertGetHas(t, c3, k2, v2, true)
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	assertGetHas(t, base, k, nil, false)
	assertGetHas(t, base, k2, v2, true)
	assertGetHas(t, base, k3, nil, false)

	// and to test devnull....
	require.NoError(t, base.Write())
	assertGetHas(t, devnull, k2, nil, false)
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	// make 10 keys and 20 values....
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	type query struct {
		key, value []byte
	}

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []query
		childQueries  []query
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			childOps:      []Op{SetOp(ks[1], vs[11]), SetOp(ks[3], vs[7]), DelOp(ks[2])},
			parentQueries: []query{{ks[1], vs[1]}, {ks[2], vs[2]}, {ks[3], nil}},
			childQueries:  []query{{ks[1], vs[11]}, {ks[2], nil}, {ks[3], vs[7]}},
		},
		"delete then set again": {
			parentOps:     []Op{SetOp(ks[4], vs[4])},
			childOps:      []Op{DelOp(ks[4]), SetOp(ks[4], vs[14])},
			parentQueries: []query{{ks[4], vs[4]}},
			childQueries:  []query{{ks[4], vs[14]}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent := MemStore().CacheWrap()
			for _, op := range tc.parentOps {
				require.NoError(t, op.Apply(parent))
			}

			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				require.NoError(t, op.Apply(child))
			}

			// now check the parent is unaffected
			for _, q := range tc.parentQueries {
				assertGetHas(t, parent, q.key, q.value, q.value != nil)
			}
			// the child shows changes
			for _, q := range tc.childQueries {
				assertGetHas(t, child, q.key, q.value, q.value != nil)
			}

			// write child to parent and make sure it also shows proper data
			require.NoError(t, child.Write())
			for _, q := range tc.childQueries {
				assertGetHas(t, parent, q.key, q.value, q.value != nil)
			}
		})
	}
}

func TestLogableStoreRecordsWrites(t *testing.T) {
	kv, ops := LogableStore()

	cache := kv.CacheWrap()
	require.NoError(t, cache.Set([]byte("a"), []byte("1")))
	cache.Discard()
	assert.Empty(t, ops.ShowOps())

	require.NoError(t, kv.Set([]byte("b"), []byte("2")))
	require.NoError(t, kv.Delete([]byte("c")))
	require.NoError(t, kv.(KVCacheWrap).Write())

	got := ops.ShowOps()
	require.Len(t, got, 2)
	assert.True(t, got[0].IsSetOp())
	assert.Equal(t, []byte("b"), got[0].Key())
	assert.Equal(t, []byte("2"), got[0].Value())
	assert.False(t, got[1].IsSetOp())
	assert.Equal(t, []byte("c"), got[1].Key())
}

// randKeys returns a slice of count keys, all of length
func randKeys(count, length int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = randBytes(length)
	}
	return res
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	rand.Read(res)
	return res
}
