package app

import (
	"github.com/philipparndt/gobim/pkg/model"
)

// Presenter is the rendering collaborator's inbound surface: it receives
// the full component snapshot after every mutation. The registry does no
// incremental diffing; presenting the whole snapshot is the contract.
type Presenter interface {
	Present(components []*model.Component)
}

// NopPresenter discards every snapshot. Used headless and in tests.
type NopPresenter struct{}

// Present implements Presenter
func (NopPresenter) Present([]*model.Component) {}
