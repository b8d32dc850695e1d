// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jobdeck Contributors

package auth

import "github.com/prometheus/client_golang/prometheus"

// Metrics contains the Prometheus instruments for account flows.
type Metrics struct {
	Registrations  *prometheus.CounterVec
	Logins         *prometheus.CounterVec
	SessionsActive prometheus.Gauge
}

// NewMetrics creates and registers the account metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobdeck_registrations_total",
				Help: "Total number of registration attempts by status",
			},
			[]string{"status"},
		),
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobdeck_logins_total",
				Help: "Total number of login attempts by status",
			},
			[]string{"status"},
		),
		SessionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "jobdeck_sessions_active",
				Help: "Number of currently open sessions",
			},
		),
	}

	reg.MustRegister(m.Registrations)
	reg.MustRegister(m.Logins)
	reg.MustRegister(m.SessionsActive)

	return m
}
