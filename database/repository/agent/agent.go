package agent

import (
	"context"
	"strings"
	"time"

	"casabot/database"
	"casabot/models"
	"casabot/utils"
)

const agentsTab = "agents"

// Repository looks up agent contacts referenced by listings.
type Repository interface {
	GetByID(ctx context.Context, agentID string) (*models.Agent, error)
}

// SheetsAgentRepo reads the agents worksheet. The table changes rarely, so it
// keeps a longer cache than the other stores.
type SheetsAgentRepo struct {
	cache *utils.RowCache[[]models.Agent]
}

func NewSheetsAgentRepo() *SheetsAgentRepo {
	return &SheetsAgentRepo{cache: utils.NewRowCache[[]models.Agent](60 * time.Second)}
}

func (r *SheetsAgentRepo) readAll(ctx context.Context) ([]models.Agent, error) {
	if rows, ok := r.cache.Get(); ok {
		return rows, nil
	}
	records, err := database.ReadRecords(ctx, agentsTab)
	if err != nil {
		return nil, err
	}
	agents := make([]models.Agent, 0, len(records))
	for _, rec := range records {
		agents = append(agents, models.Agent{
			AgentID: strings.TrimSpace(rec["agent_id"]),
			Name:    rec["name"],
			Phone:   rec["phone"],
			LineID:  rec["line_id"],
		})
	}
	r.cache.Set(agents)
	return agents, nil
}

func (r *SheetsAgentRepo) GetByID(ctx context.Context, agentID string) (*models.Agent, error) {
	if agentID == "" {
		return nil, nil
	}
	rows, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].AgentID == agentID {
			return &rows[i], nil
		}
	}
	return nil, nil
}
