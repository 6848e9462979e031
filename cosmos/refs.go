package cosmos

// Resource links are derived deterministically from the parent link and the
// resource id; no link is ever stored independently of its id.

func databaseLink(id string) string {
	return "dbs/" + id
}

func containerLinkFor(dbLink, id string) string {
	return dbLink + "/colls/" + id
}

func itemLinkFor(collLink, id string) string {
	return collLink + "/docs/" + id
}

func userLinkFor(dbLink, id string) string {
	return dbLink + "/users/" + id
}

// ContainerRef identifies a container within a database either by id
// (ContainerID) or by an existing handle (*Container).
type ContainerRef interface {
	containerLink(db *Database) string
}

// ContainerID references a container by its id; the link is derived from the
// owning database.
type ContainerID string

func (id ContainerID) containerLink(db *Database) string {
	return containerLinkFor(db.Link, string(id))
}

func (c *Container) containerLink(*Database) string {
	return c.Link
}

// resolveContainerLink resolves a container reference to its resource link.
func resolveContainerLink(db *Database, ref ContainerRef) string {
	return ref.containerLink(db)
}

// containerRefID returns the id a reference addresses.
func containerRefID(ref ContainerRef) string {
	switch r := ref.(type) {
	case ContainerID:
		return string(r)
	case *Container:
		return r.ID
	}
	return ""
}

// ItemRef identifies an item either by an explicit link (ItemLink) or by an
// Item value (*Item), which resolves through its embedded self-link when one
// is present.
type ItemRef interface {
	itemLink(c *Container) string
}

// ItemLink references an item by its full resource link.
type ItemLink string

func (l ItemLink) itemLink(*Container) string {
	return string(l)
}

func (i *Item) itemLink(c *Container) string {
	if self := i.SelfLink(); self != "" {
		return self
	}
	return itemLinkFor(c.Link, i.ID())
}

// resolveItemLink resolves an item reference to its canonical link,
// preferring an embedded self-link over a constructed one.
func resolveItemLink(c *Container, ref ItemRef) string {
	return ref.itemLink(c)
}

// UserRef identifies a user within a database either by id (UserID) or by an
// existing handle (*User).
type UserRef interface {
	userLink(db *Database) string
}

// UserID references a user by its id.
type UserID string

func (id UserID) userLink(db *Database) string {
	return userLinkFor(db.Link, string(id))
}

func (u *User) userLink(*Database) string {
	return u.Link
}

// resolveUserLink resolves a user reference to its resource link.
func resolveUserLink(db *Database, ref UserRef) string {
	return ref.userLink(db)
}
