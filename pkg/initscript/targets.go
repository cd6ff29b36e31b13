package initscript

import (
	"github.com/samber/lo"

	"github.com/brevdev/kusto-init/pkg/files"
)

// Role is a spark process role with its own log4j2 config directory.
type Role string

const (
	RoleExecutor     Role = "executor"
	RoleDriver       Role = "driver"
	RoleMasterWorker Role = "master-worker"
)

// Roles is ordered; copies happen in this order.
var Roles = []Role{RoleExecutor, RoleDriver, RoleMasterWorker}

type Target struct {
	Role Role
	Path string
}

func targetsFor(sparkHome string) []Target {
	return lo.Map(Roles, func(r Role, _ int) Target {
		return Target{Role: r, Path: files.GetLog4jConfigPath(sparkHome, string(r))}
	})
}
