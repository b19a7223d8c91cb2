package infra

import (
	"github.com/m-mizutani/labelmesh/pkg/domain/interfaces"
)

type Clients struct {
	labelAPI interfaces.LabelAPI
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) LabelAPI() interfaces.LabelAPI {
	return x.labelAPI
}

func WithLabelAPI(client interfaces.LabelAPI) Option {
	return func(x *Clients) {
		x.labelAPI = client
	}
}
