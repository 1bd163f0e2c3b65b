package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/remittest"
	"github.com/iov-one/remit/remittest/assert"
	"github.com/iov-one/remit/store"
)

func TestBumpSequence(t *testing.T) {
	var (
		key1 = remittest.NewKey().PublicKey()
		key2 = remittest.NewKey().PublicKey()
	)

	cases := map[string]struct {
		// Before performing the test, initialize the database with given user data.
		InitData       []*UserData
		Msg            BumpSequenceMsg
		Signers        []remit.Condition
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		// Usual transaction processing additionally increments the
		// sequence, that is why the handler increments it by the
		// requested value - 1.
		WantSequences []*UserData
	}{
		"great success": {
			InitData: []*UserData{
				{Pubkey: key1, Sequence: 1},
				{Pubkey: key2, Sequence: 9},
			},
			Signers: []remit.Condition{key1.Condition()},
			Msg:     BumpSequenceMsg{Increment: 2},
			WantSequences: []*UserData{
				{Pubkey: key1, Sequence: 2},
				{Pubkey: key2, Sequence: 9},
			},
		},
		"incrementing sequence of the main signer": {
			InitData: []*UserData{
				{Pubkey: key1, Sequence: 1},
				{Pubkey: key2, Sequence: 9},
			},
			Signers: []remit.Condition{
				key2.Condition(), // Main signer.
				key1.Condition(),
			},
			Msg: BumpSequenceMsg{Increment: 2},
			WantSequences: []*UserData{
				{Pubkey: key1, Sequence: 1},
				{Pubkey: key2, Sequence: 10},
			},
		},
		"increment of one changes nothing": {
			InitData: []*UserData{
				{Pubkey: key1, Sequence: 5},
			},
			Signers: []remit.Condition{key1.Condition()},
			Msg:     BumpSequenceMsg{Increment: 1},
			WantSequences: []*UserData{
				{Pubkey: key1, Sequence: 5},
			},
		},
		"transaction with a missing signature is rejected": {
			Msg:            BumpSequenceMsg{Increment: 1},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"message with a zero sequence increment is invalid": {
			InitData: []*UserData{
				{Pubkey: key1, Sequence: 1},
			},
			Signers:        []remit.Condition{key1.Condition()},
			Msg:            BumpSequenceMsg{Increment: 0},
			WantCheckErr:   errors.ErrMsg,
			WantDeliverErr: errors.ErrMsg,
		},
		"user that we increment the sequence of must exist": {
			InitData: []*UserData{
				{Pubkey: key2, Sequence: 4},
			},
			Signers:        []remit.Condition{key1.Condition()},
			Msg:            BumpSequenceMsg{Increment: 421},
			WantCheckErr:   errors.ErrNotFound,
			WantDeliverErr: errors.ErrNotFound,
		},
		"sequence increment value must not be greater than 1000": {
			InitData: []*UserData{
				{Pubkey: key1, Sequence: 4},
			},
			Signers:        []remit.Condition{key1.Condition()},
			Msg:            BumpSequenceMsg{Increment: 1001},
			WantCheckErr:   errors.ErrMsg,
			WantDeliverErr: errors.ErrMsg,
		},
		"sequence increment value can be 1000": {
			InitData: []*UserData{
				{Pubkey: key1, Sequence: 4},
			},
			Signers: []remit.Condition{key1.Condition()},
			Msg:     BumpSequenceMsg{Increment: 1000},
			WantSequences: []*UserData{
				{Pubkey: key1, Sequence: 1003},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			auth := &remittest.Auth{Signers: tc.Signers}
			r := &testRouter{}
			RegisterRoutes(r, auth)
			h := r.handler

			db := store.MemStore()
			b := NewBucket()
			for _, u := range tc.InitData {
				assert.Nil(t, b.Save(db, u))
			}

			tx := &remittest.Tx{Msg: &tc.Msg}
			cache := db.CacheWrap()
			if _, err := h.Check(context.TODO(), cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := h.Deliver(context.TODO(), db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			for _, want := range tc.WantSequences {
				got, err := b.GetOrCreate(db, want.Pubkey)
				assert.Nil(t, err)
				assert.Equal(t, want.Sequence, got.Sequence)
			}
		})
	}
}

type testRouter struct {
	handler remit.Handler
}

func (r *testRouter) Handle(path string, h remit.Handler) {
	r.handler = h
}
