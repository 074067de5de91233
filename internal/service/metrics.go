package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"pokedex/internal/model"
)

// Metrics holds the game's domain counters. A nil *Metrics records nothing.
type Metrics struct {
	purchases         *prometheus.CounterVec
	goldSpent         prometheus.Counter
	missionsCompleted *prometheus.CounterVec
	missionsClaimed   *prometheus.CounterVec
	dexMarks          prometheus.Counter
	teamsCreated      prometheus.Counter
}

// NewMetrics creates the domain counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_shop_purchases_total",
			Help: "Shop items purchased, by category.",
		}, []string{"category"}),
		goldSpent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pokedex_gold_spent_total",
			Help: "Gold spent in the shop.",
		}),
		missionsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_missions_completed_total",
			Help: "Missions that reached their target, by kind.",
		}, []string{"kind"}),
		missionsClaimed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_missions_claimed_total",
			Help: "Mission rewards claimed, by kind.",
		}, []string{"kind"}),
		dexMarks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pokedex_dex_marks_total",
			Help: "Species newly marked as owned.",
		}),
		teamsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pokedex_teams_created_total",
			Help: "Battle teams created.",
		}),
	}
	for _, c := range []prometheus.Collector{
		m.purchases, m.goldSpent, m.missionsCompleted, m.missionsClaimed, m.dexMarks, m.teamsCreated,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) purchase(item model.ShopItem) {
	if m == nil {
		return
	}
	m.purchases.WithLabelValues(string(item.Category)).Inc()
	m.goldSpent.Add(float64(item.Price))
}

func (m *Metrics) missionCompleted(kind model.MissionKind) {
	if m == nil {
		return
	}
	m.missionsCompleted.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) missionClaimed(kind model.MissionKind) {
	if m == nil {
		return
	}
	m.missionsClaimed.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) dexMarked(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.dexMarks.Add(float64(n))
}

func (m *Metrics) teamCreated() {
	if m == nil {
		return
	}
	m.teamsCreated.Inc()
}
