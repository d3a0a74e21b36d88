package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hcl-ram/AI-Tutor-sf/ent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Sequence == 0 {
		n, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		snap.Sequence = n
	}

	// ent stores JSON columns as map[string]any, so round-trip the
	// typed payload through encoding/json.
	var payload map[string]any
	if err := convertJSON(snap.Data, &payload); err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	builder := r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetData(payload)
	if !snap.Timestamp.IsZero() {
		builder = builder.SetTimestamp(snap.Timestamp)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	snap := &Snapshot{ID: row.ID, Sequence: row.Sequence, Timestamp: row.Timestamp}
	if err := convertJSON(row.Data, &snap.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return snap, nil
}

// Prune deletes everything older than the keep most recent snapshots.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The (keep+1)th newest snapshot, if any, sets the cutoff.
	edge, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(edge) == 0 {
		return nil
	}

	if _, err := r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(edge[0].Timestamp)).
		Exec(ctx); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// convertJSON re-encodes src into dst, bridging between typed structs
// and the map form ent's JSON fields use.
func convertJSON(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
