package handler

import (
	"mediabox/backend/library/fetcher"
	"mediabox/backend/library/storage"
)

var (
	fileRepo *storage.Repository
	remote   *fetcher.Fetcher
)

// Init wires the handlers to the managed directory. Must be called before
// the router is set up.
func Init(repo *storage.Repository) {
	fileRepo = repo
	remote = fetcher.New(repo)
}
