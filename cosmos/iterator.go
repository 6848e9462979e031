package cosmos

import (
	"net/http"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// Iterators are lazy, finite and one-shot: the remote call happens on the
// first Next, the sequence is forward-only, and a consumed iterator cannot
// be restarted. An empty remote result is an empty sequence, not an error.

// feedSource drives a lazily fetched properties feed.
type feedSource struct {
	fetch   func() ([]transport.Properties, error)
	fetched bool
	items   []transport.Properties
	pos     int
	err     error
}

func (f *feedSource) next() (transport.Properties, bool) {
	if !f.fetched {
		f.items, f.err = f.fetch()
		f.fetched = true
	}
	if f.err != nil || f.pos >= len(f.items) {
		return nil, false
	}
	props := f.items[f.pos]
	f.pos++
	return props, true
}

// DatabaseIterator iterates over a feed of database handles.
type DatabaseIterator struct {
	tc  transport.TransportContext
	src feedSource
	cur *Database
}

func newDatabaseIterator(tc transport.TransportContext, fetch func() ([]transport.Properties, error)) *DatabaseIterator {
	return &DatabaseIterator{tc: tc, src: feedSource{fetch: fetch}}
}

// Next advances the iterator. It returns false when the sequence is
// exhausted or the fetch failed; check Err after a false return.
func (it *DatabaseIterator) Next() bool {
	props, ok := it.src.next()
	if !ok {
		it.cur = nil
		return false
	}
	it.cur = newDatabase(it.tc, propString(props, "id"), props)
	return true
}

// Database returns the current database handle.
func (it *DatabaseIterator) Database() *Database {
	return it.cur
}

// Err returns the error that stopped iteration, if any.
func (it *DatabaseIterator) Err() error {
	return it.src.err
}

// ContainerIterator iterates over a feed of container handles.
type ContainerIterator struct {
	db  *Database
	src feedSource
	cur *Container
}

func newContainerIterator(db *Database, fetch func() ([]transport.Properties, error)) *ContainerIterator {
	return &ContainerIterator{db: db, src: feedSource{fetch: fetch}}
}

// Next advances the iterator. It returns false when the sequence is
// exhausted or the fetch failed; check Err after a false return.
func (it *ContainerIterator) Next() bool {
	props, ok := it.src.next()
	if !ok {
		it.cur = nil
		return false
	}
	it.cur = newContainer(it.db, propString(props, "id"), props)
	return true
}

// Container returns the current container handle.
func (it *ContainerIterator) Container() *Container {
	return it.cur
}

// Err returns the error that stopped iteration, if any.
func (it *ContainerIterator) Err() error {
	return it.src.err
}

// UserIterator iterates over a feed of user handles.
type UserIterator struct {
	db  *Database
	src feedSource
	cur *User
}

func newUserIterator(db *Database, fetch func() ([]transport.Properties, error)) *UserIterator {
	return &UserIterator{db: db, src: feedSource{fetch: fetch}}
}

// Next advances the iterator. It returns false when the sequence is
// exhausted or the fetch failed; check Err after a false return.
func (it *UserIterator) Next() bool {
	props, ok := it.src.next()
	if !ok {
		it.cur = nil
		return false
	}
	it.cur = newUser(it.db.Link, propString(props, "id"), props)
	return true
}

// User returns the current user handle.
func (it *UserIterator) User() *User {
	return it.cur
}

// Err returns the error that stopped iteration, if any.
func (it *UserIterator) Err() error {
	return it.src.err
}

// ItemIterator iterates over a feed of items. All items of one feed share
// the headers of the response that produced them.
type ItemIterator struct {
	fetch   func() ([]map[string]any, http.Header, error)
	fetched bool
	docs    []map[string]any
	headers http.Header
	pos     int
	err     error
	cur     *Item
}

func newItemIterator(fetch func() ([]map[string]any, http.Header, error)) *ItemIterator {
	return &ItemIterator{fetch: fetch}
}

// Next advances the iterator. It returns false when the sequence is
// exhausted or the fetch failed; check Err after a false return.
func (it *ItemIterator) Next() bool {
	if !it.fetched {
		it.docs, it.headers, it.err = it.fetch()
		it.fetched = true
	}
	if it.err != nil || it.pos >= len(it.docs) {
		it.cur = nil
		return false
	}
	it.cur = newItem(it.headers, it.docs[it.pos])
	it.pos++
	return true
}

// Item returns the current item.
func (it *ItemIterator) Item() *Item {
	return it.cur
}

// Err returns the error that stopped iteration, if any.
func (it *ItemIterator) Err() error {
	return it.err
}
