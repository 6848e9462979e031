// Package emulator provides an in-memory development server speaking the
// same wire protocol as the real service. It backs the example program and
// the end-to-end tests; nothing is persisted.
package emulator

import (
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// apiError is a store-level failure carrying the HTTP status the wire layer
// should answer with.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func errNotFound(kind, id string) *apiError {
	return &apiError{
		Status:  http.StatusNotFound,
		Code:    "NotFound",
		Message: fmt.Sprintf("%s %q does not exist", kind, id),
	}
}

func errConflict(kind, id string) *apiError {
	return &apiError{
		Status:  http.StatusConflict,
		Code:    "Conflict",
		Message: fmt.Sprintf("%s %q already exists", kind, id),
	}
}

type document = map[string]any

type containerState struct {
	props document
	docs  map[string]document
	order []string
	lsn   int64
}

type databaseState struct {
	props     document
	colls     map[string]*containerState
	collOrder []string
	users     map[string]document
	userOrder []string
}

// Account is the in-memory account state. It is safe for concurrent use.
type Account struct {
	mu  sync.RWMutex
	dbs map[string]*databaseState
	ord []string
}

// NewAccount creates an empty account.
func NewAccount() *Account {
	return &Account{dbs: make(map[string]*databaseState)}
}

// stamp adds the system fields the service attaches to every stored
// resource.
func stamp(props document, selfLink string) document {
	props["_rid"] = uuid.NewString()
	props["_self"] = selfLink
	props["_etag"] = `"` + uuid.NewString() + `"`
	props["_ts"] = time.Now().Unix()
	return props
}

func docID(doc document) string {
	if id, ok := doc["id"].(string); ok && id != "" {
		return id
	}
	return ""
}

// CreateDatabase creates a database; 409 if the id is taken.
func (a *Account) CreateDatabase(def document) (document, error) {
	id := docID(def)
	if id == "" {
		return nil, &apiError{Status: http.StatusBadRequest, Code: "BadRequest", Message: "database id is required"}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.dbs[id]; exists {
		return nil, errConflict("database", id)
	}
	props := stamp(document{"id": id}, "dbs/"+id)
	a.dbs[id] = &databaseState{
		props: props,
		colls: make(map[string]*containerState),
		users: make(map[string]document),
	}
	a.ord = append(a.ord, id)
	return props, nil
}

// GetDatabase returns a database's properties; 404 if absent.
func (a *Account) GetDatabase(id string) (document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	db, ok := a.dbs[id]
	if !ok {
		return nil, errNotFound("database", id)
	}
	return db.props, nil
}

// ListDatabases returns all databases in creation order.
func (a *Account) ListDatabases() []document {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]document, 0, len(a.ord))
	for _, id := range a.ord {
		out = append(out, a.dbs[id].props)
	}
	return out
}

// QueryDatabases returns the databases matching the query.
func (a *Account) QueryDatabases(q transport.Query) []document {
	return filterByQuery(q, a.ListDatabases())
}

// DeleteDatabase removes a database and everything in it; 404 if absent.
func (a *Account) DeleteDatabase(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.dbs[id]; !ok {
		return errNotFound("database", id)
	}
	delete(a.dbs, id)
	a.ord = removeID(a.ord, id)
	return nil
}

func (a *Account) database(id string) (*databaseState, error) {
	db, ok := a.dbs[id]
	if !ok {
		return nil, errNotFound("database", id)
	}
	return db, nil
}

// CreateContainer creates a container in a database; 409 if the id is taken.
func (a *Account) CreateContainer(dbID string, def document) (document, error) {
	id := docID(def)
	if id == "" {
		return nil, &apiError{Status: http.StatusBadRequest, Code: "BadRequest", Message: "container id is required"}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	db, err := a.database(dbID)
	if err != nil {
		return nil, err
	}
	if _, exists := db.colls[id]; exists {
		return nil, errConflict("container", id)
	}
	props := stamp(cloneDoc(def), fmt.Sprintf("dbs/%s/colls/%s", dbID, id))
	db.colls[id] = &containerState{
		props: props,
		docs:  make(map[string]document),
	}
	db.collOrder = append(db.collOrder, id)
	return props, nil
}

// GetContainer returns a container's properties; 404 if absent.
func (a *Account) GetContainer(dbID, collID string) (document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, coll, err := a.container(dbID, collID)
	if err != nil {
		return nil, err
	}
	return coll.props, nil
}

// ListContainers returns a database's containers in creation order.
func (a *Account) ListContainers(dbID string) ([]document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	db, err := a.database(dbID)
	if err != nil {
		return nil, err
	}
	out := make([]document, 0, len(db.collOrder))
	for _, id := range db.collOrder {
		out = append(out, db.colls[id].props)
	}
	return out, nil
}

// QueryContainers returns the containers matching the query.
func (a *Account) QueryContainers(dbID string, q transport.Query) ([]document, error) {
	all, err := a.ListContainers(dbID)
	if err != nil {
		return nil, err
	}
	return filterByQuery(q, all), nil
}

// ReplaceContainer replaces a container's mutable properties, keeping the
// system fields and the stored documents.
func (a *Account) ReplaceContainer(dbID, collID string, def document) (document, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, coll, err := a.container(dbID, collID)
	if err != nil {
		return nil, err
	}
	props := cloneDoc(def)
	props["id"] = collID
	for _, sys := range []string{"_rid", "_self", "_ts"} {
		props[sys] = coll.props[sys]
	}
	props["_etag"] = `"` + uuid.NewString() + `"`
	coll.props = props
	return props, nil
}

// DeleteContainer removes a container and its documents; 404 if absent.
func (a *Account) DeleteContainer(dbID, collID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	db, err := a.database(dbID)
	if err != nil {
		return err
	}
	if _, ok := db.colls[collID]; !ok {
		return errNotFound("container", collID)
	}
	delete(db.colls, collID)
	db.collOrder = removeID(db.collOrder, collID)
	return nil
}

func (a *Account) container(dbID, collID string) (*databaseState, *containerState, error) {
	db, err := a.database(dbID)
	if err != nil {
		return nil, nil, err
	}
	coll, ok := db.colls[collID]
	if !ok {
		return nil, nil, errNotFound("container", collID)
	}
	return db, coll, nil
}

// PutDocument stores a document. Without upsert a duplicate id is a 409;
// with upsert an existing document is replaced. A document without an id
// gets a generated one. Returns the stored document and the container LSN.
func (a *Account) PutDocument(dbID, collID string, doc document, upsert bool) (document, int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, coll, err := a.container(dbID, collID)
	if err != nil {
		return nil, 0, err
	}

	id := docID(doc)
	if id == "" {
		id = uuid.NewString()
	}
	_, exists := coll.docs[id]
	if exists && !upsert {
		return nil, 0, errConflict("document", id)
	}

	stored := cloneDoc(doc)
	stored["id"] = id
	stamp(stored, fmt.Sprintf("dbs/%s/colls/%s/docs/%s", dbID, collID, id))
	coll.docs[id] = stored
	if !exists {
		coll.order = append(coll.order, id)
	}
	coll.lsn++
	return stored, coll.lsn, nil
}

// ReplaceDocument replaces an existing document; 404 if absent.
func (a *Account) ReplaceDocument(dbID, collID, id string, doc document) (document, int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, coll, err := a.container(dbID, collID)
	if err != nil {
		return nil, 0, err
	}
	if _, ok := coll.docs[id]; !ok {
		return nil, 0, errNotFound("document", id)
	}
	stored := cloneDoc(doc)
	stored["id"] = id
	stamp(stored, fmt.Sprintf("dbs/%s/colls/%s/docs/%s", dbID, collID, id))
	coll.docs[id] = stored
	coll.lsn++
	return stored, coll.lsn, nil
}

// GetDocument returns a stored document and the container LSN; 404 if absent.
func (a *Account) GetDocument(dbID, collID, id string) (document, int64, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, coll, err := a.container(dbID, collID)
	if err != nil {
		return nil, 0, err
	}
	doc, ok := coll.docs[id]
	if !ok {
		return nil, 0, errNotFound("document", id)
	}
	return doc, coll.lsn, nil
}

// ListDocuments returns a container's documents in insertion order plus the
// container LSN.
func (a *Account) ListDocuments(dbID, collID string) ([]document, int64, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, coll, err := a.container(dbID, collID)
	if err != nil {
		return nil, 0, err
	}
	out := make([]document, 0, len(coll.order))
	for _, id := range coll.order {
		out = append(out, coll.docs[id])
	}
	return out, coll.lsn, nil
}

// QueryDocuments returns the documents matching the query plus the container
// LSN.
func (a *Account) QueryDocuments(dbID, collID string, q transport.Query) ([]document, int64, error) {
	docs, lsn, err := a.ListDocuments(dbID, collID)
	if err != nil {
		return nil, 0, err
	}
	return filterByQuery(q, docs), lsn, nil
}

// DeleteDocument removes a document; 404 if absent.
func (a *Account) DeleteDocument(dbID, collID, id string) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, coll, err := a.container(dbID, collID)
	if err != nil {
		return 0, err
	}
	if _, ok := coll.docs[id]; !ok {
		return 0, errNotFound("document", id)
	}
	delete(coll.docs, id)
	coll.order = removeID(coll.order, id)
	coll.lsn++
	return coll.lsn, nil
}

// CreateUser creates a user in a database; 409 if the id is taken.
func (a *Account) CreateUser(dbID string, def document) (document, error) {
	id := docID(def)
	if id == "" {
		return nil, &apiError{Status: http.StatusBadRequest, Code: "BadRequest", Message: "user id is required"}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	db, err := a.database(dbID)
	if err != nil {
		return nil, err
	}
	if _, exists := db.users[id]; exists {
		return nil, errConflict("user", id)
	}
	props := stamp(document{"id": id}, fmt.Sprintf("dbs/%s/users/%s", dbID, id))
	db.users[id] = props
	db.userOrder = append(db.userOrder, id)
	return props, nil
}

// GetUser returns a user's properties; 404 if absent.
func (a *Account) GetUser(dbID, id string) (document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	db, err := a.database(dbID)
	if err != nil {
		return nil, err
	}
	user, ok := db.users[id]
	if !ok {
		return nil, errNotFound("user", id)
	}
	return user, nil
}

// ListUsers returns a database's users in creation order.
func (a *Account) ListUsers(dbID string) ([]document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	db, err := a.database(dbID)
	if err != nil {
		return nil, err
	}
	out := make([]document, 0, len(db.userOrder))
	for _, id := range db.userOrder {
		out = append(out, db.users[id])
	}
	return out, nil
}

// DeleteUser removes a user; 404 if absent.
func (a *Account) DeleteUser(dbID, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	db, err := a.database(dbID)
	if err != nil {
		return err
	}
	if _, ok := db.users[id]; !ok {
		return errNotFound("user", id)
	}
	delete(db.users, id)
	db.userOrder = removeID(db.userOrder, id)
	return nil
}

// idEqualityQuery recognizes the "SELECT ... WHERE r.id = @param" shape used
// by the database-management sample. Anything else falls back to a full scan.
var idEqualityQuery = regexp.MustCompile(`(?i)where\s+r\.id\s*=\s*(@\w+)`)

func filterByQuery(q transport.Query, resources []document) []document {
	m := idEqualityQuery.FindStringSubmatch(q.Text)
	if m == nil {
		return resources
	}
	var want string
	for _, p := range q.Parameters {
		if p.Name == m[1] {
			want, _ = p.Value.(string)
			break
		}
	}
	if want == "" {
		return resources
	}
	var out []document
	for _, r := range resources {
		if docID(r) == want {
			out = append(out, r)
		}
	}
	return out
}

func cloneDoc(doc document) document {
	out := make(document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
