package store

import "github.com/brevdev/kusto-init/pkg/config"

type BasicStore struct {
	config config.ConstantsConfig
}

func NewBasicStore() *BasicStore {
	return &BasicStore{config: *config.GlobalConfig}
}
