package emulator

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/cosmos-client/cosmos/transport"
)

// Handlers holds the wire-protocol handlers over one in-memory account.
type Handlers struct {
	account *Account
}

// NewHandlers creates handlers over the given account.
func NewHandlers(account *Account) *Handlers {
	return &Handlers{account: account}
}

func writeError(c *gin.Context, err error) {
	var ae *apiError
	if errors.As(err, &ae) {
		c.JSON(ae.Status, gin.H{"code": ae.Code, "message": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"code": "InternalServerError", "message": err.Error()})
}

func isQuery(c *gin.Context) bool {
	return c.GetHeader(transport.HeaderIsQuery) == "true"
}

func isUpsert(c *gin.Context) bool {
	return c.GetHeader(transport.HeaderIsUpsert) == "true"
}

func setSessionToken(c *gin.Context, lsn int64) {
	c.Header(transport.HeaderSessionToken, fmt.Sprintf("0:%d", lsn))
}

func feed(key string, entries []document) gin.H {
	if entries == nil {
		entries = []document{}
	}
	return gin.H{key: entries, "_count": len(entries)}
}

func bindQuery(c *gin.Context) (transport.Query, bool) {
	var q transport.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		writeError(c, &apiError{Status: http.StatusBadRequest, Code: "BadRequest", Message: "malformed query body"})
		return q, false
	}
	return q, true
}

func bindDocument(c *gin.Context) (document, bool) {
	var doc document
	if err := c.ShouldBindJSON(&doc); err != nil {
		writeError(c, &apiError{Status: http.StatusBadRequest, Code: "BadRequest", Message: "malformed request body"})
		return nil, false
	}
	return doc, true
}

// CreateOrQueryDatabases handles POST /dbs: database creation, or a database
// query when the query header is set.
func (h *Handlers) CreateOrQueryDatabases(c *gin.Context) {
	if isQuery(c) {
		q, ok := bindQuery(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, feed(transport.FeedKeyDatabases, h.account.QueryDatabases(q)))
		return
	}

	def, ok := bindDocument(c)
	if !ok {
		return
	}
	props, err := h.account.CreateDatabase(def)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, props)
}

// ListDatabases handles GET /dbs.
func (h *Handlers) ListDatabases(c *gin.Context) {
	c.JSON(http.StatusOK, feed(transport.FeedKeyDatabases, h.account.ListDatabases()))
}

// GetDatabase handles GET /dbs/:db.
func (h *Handlers) GetDatabase(c *gin.Context) {
	props, err := h.account.GetDatabase(c.Param("db"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, props)
}

// DeleteDatabase handles DELETE /dbs/:db.
func (h *Handlers) DeleteDatabase(c *gin.Context) {
	if err := h.account.DeleteDatabase(c.Param("db")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateOrQueryContainers handles POST /dbs/:db/colls.
func (h *Handlers) CreateOrQueryContainers(c *gin.Context) {
	dbID := c.Param("db")

	if isQuery(c) {
		q, ok := bindQuery(c)
		if !ok {
			return
		}
		entries, err := h.account.QueryContainers(dbID, q)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, feed(transport.FeedKeyContainers, entries))
		return
	}

	def, ok := bindDocument(c)
	if !ok {
		return
	}
	props, err := h.account.CreateContainer(dbID, def)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, props)
}

// ListContainers handles GET /dbs/:db/colls.
func (h *Handlers) ListContainers(c *gin.Context) {
	entries, err := h.account.ListContainers(c.Param("db"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed(transport.FeedKeyContainers, entries))
}

// GetContainer handles GET /dbs/:db/colls/:coll.
func (h *Handlers) GetContainer(c *gin.Context) {
	props, err := h.account.GetContainer(c.Param("db"), c.Param("coll"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, props)
}

// ReplaceContainer handles PUT /dbs/:db/colls/:coll.
func (h *Handlers) ReplaceContainer(c *gin.Context) {
	def, ok := bindDocument(c)
	if !ok {
		return
	}
	props, err := h.account.ReplaceContainer(c.Param("db"), c.Param("coll"), def)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, props)
}

// DeleteContainer handles DELETE /dbs/:db/colls/:coll.
func (h *Handlers) DeleteContainer(c *gin.Context) {
	if err := h.account.DeleteContainer(c.Param("db"), c.Param("coll")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateOrQueryDocuments handles POST /dbs/:db/colls/:coll/docs: document
// creation (honoring the upsert header), or a document query when the query
// header is set.
func (h *Handlers) CreateOrQueryDocuments(c *gin.Context) {
	dbID, collID := c.Param("db"), c.Param("coll")

	if isQuery(c) {
		q, ok := bindQuery(c)
		if !ok {
			return
		}
		docs, lsn, err := h.account.QueryDocuments(dbID, collID, q)
		if err != nil {
			writeError(c, err)
			return
		}
		setSessionToken(c, lsn)
		c.JSON(http.StatusOK, feed(transport.FeedKeyDocuments, docs))
		return
	}

	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	stored, lsn, err := h.account.PutDocument(dbID, collID, doc, isUpsert(c))
	if err != nil {
		writeError(c, err)
		return
	}
	setSessionToken(c, lsn)
	c.JSON(http.StatusCreated, stored)
}

// ListDocuments handles GET /dbs/:db/colls/:coll/docs.
func (h *Handlers) ListDocuments(c *gin.Context) {
	docs, lsn, err := h.account.ListDocuments(c.Param("db"), c.Param("coll"))
	if err != nil {
		writeError(c, err)
		return
	}
	setSessionToken(c, lsn)
	c.JSON(http.StatusOK, feed(transport.FeedKeyDocuments, docs))
}

// GetDocument handles GET /dbs/:db/colls/:coll/docs/:doc.
func (h *Handlers) GetDocument(c *gin.Context) {
	doc, lsn, err := h.account.GetDocument(c.Param("db"), c.Param("coll"), c.Param("doc"))
	if err != nil {
		writeError(c, err)
		return
	}
	setSessionToken(c, lsn)
	c.JSON(http.StatusOK, doc)
}

// ReplaceDocument handles PUT /dbs/:db/colls/:coll/docs/:doc.
func (h *Handlers) ReplaceDocument(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	stored, lsn, err := h.account.ReplaceDocument(c.Param("db"), c.Param("coll"), c.Param("doc"), doc)
	if err != nil {
		writeError(c, err)
		return
	}
	setSessionToken(c, lsn)
	c.JSON(http.StatusOK, stored)
}

// DeleteDocument handles DELETE /dbs/:db/colls/:coll/docs/:doc.
func (h *Handlers) DeleteDocument(c *gin.Context) {
	lsn, err := h.account.DeleteDocument(c.Param("db"), c.Param("coll"), c.Param("doc"))
	if err != nil {
		writeError(c, err)
		return
	}
	setSessionToken(c, lsn)
	c.Status(http.StatusNoContent)
}

// CreateUser handles POST /dbs/:db/users.
func (h *Handlers) CreateUser(c *gin.Context) {
	def, ok := bindDocument(c)
	if !ok {
		return
	}
	props, err := h.account.CreateUser(c.Param("db"), def)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, props)
}

// ListUsers handles GET /dbs/:db/users.
func (h *Handlers) ListUsers(c *gin.Context) {
	entries, err := h.account.ListUsers(c.Param("db"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed(transport.FeedKeyUsers, entries))
}

// GetUser handles GET /dbs/:db/users/:user.
func (h *Handlers) GetUser(c *gin.Context) {
	props, err := h.account.GetUser(c.Param("db"), c.Param("user"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, props)
}

// DeleteUser handles DELETE /dbs/:db/users/:user.
func (h *Handlers) DeleteUser(c *gin.Context) {
	if err := h.account.DeleteUser(c.Param("db"), c.Param("user")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
