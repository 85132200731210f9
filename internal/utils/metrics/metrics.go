// File: internal/utils/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttemptsTotal counts login outcomes by result label:
	// success, failure_user_not_found, failure_account_locked,
	// failure_credentials.
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts by result.",
		},
		[]string{"result"},
	)

	RegistrationAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registration_attempts_total",
			Help: "Total number of registration attempts by result.",
		},
		[]string{"result"},
	)

	RoleResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_role_resolutions_total",
			Help: "Total number of permission resolutions by result.",
		},
		[]string{"result"},
	)
)
