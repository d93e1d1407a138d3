package events

import "gh-pr-mirror/internal/domain/models"

//go:generate mockery --name Publisher --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Publisher.go

type Publisher interface {
	Publish(evt models.Event)
}
