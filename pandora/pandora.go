/*
 * cabaliser - Circuit database fetcher client
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package pandora is a thin client for the persistent circuit database:
// it issues three fixed queries modelled on the original connection
// library (count qubits, decorate, fetch a layer) against Postgres via
// pgx instead of hand-rolled libpq bindings, and packs whatever rows
// come back into the C9 wire format so the decoder never needs to know
// a database exists.
package pandora

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahtoms/cabaliser/clifford"
	"github.com/ahtoms/cabaliser/opcode"
	"github.com/ahtoms/cabaliser/stream"
)

const (
	countNQubits = "SELECT COUNT(*) FROM linked_circuit_qubit WHERE type = 'In'"
	decoration   = "CALL decorate_circuit()"
	getLayer     = "SELECT type, param, qub_1, qub_2, qub_3 FROM linked_circuit_qubit " +
		"WHERE id = (SELECT decorated_circuit.id FROM decorated_circuit " +
		"WHERE decorated_circuit.id = linked_circuit_qubit.id AND layer = $1)"
)

// Source is the fetcher contract the decoder's caller drives a compile
// run through; a fake implementation satisfying it is enough to test
// the rest of the pipeline without a live database.
type Source interface {
	CountQubits(ctx context.Context) (int, error)
	Decorate(ctx context.Context) error
	GetLayer(ctx context.Context, layer int) ([]byte, int, error)
}

// Client is a Source backed by a pgx connection pool. RunID tags every
// query so log lines from a single compile correlate.
type Client struct {
	pool  *pgxpool.Pool
	RunID uuid.UUID
}

// Connect opens a pool against dsn and stamps a fresh run ID.
func Connect(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pandora: connect: %w", err)
	}
	return &Client{pool: pool, RunID: uuid.New()}, nil
}

// Close releases the underlying pool.
func (c *Client) Close() {
	c.pool.Close()
}

// CountQubits runs PANDORA_COUNT_N_QUBITS.
func (c *Client) CountQubits(ctx context.Context) (int, error) {
	var n int
	if err := c.pool.QueryRow(ctx, countNQubits).Scan(&n); err != nil {
		return 0, fmt.Errorf("pandora: count qubits: %w", err)
	}
	return n, nil
}

// Decorate runs PANDORA_DECORATION, the stored procedure that
// annotates the circuit graph with layer numbers before GetLayer can
// be called meaningfully.
func (c *Client) Decorate(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, decoration); err != nil {
		return fmt.Errorf("pandora: decorate: %w", err)
	}
	return nil
}

// GetLayer runs PANDORA_GET_LAYER for the given layer and packs each
// row into the wire format via a stream.Builder. Row type strings map
// onto opcode kinds through gateRow; unrecognized gate names are a
// fetch error rather than silently dropped.
func (c *Client) GetLayer(ctx context.Context, layer int) ([]byte, int, error) {
	rows, err := c.pool.Query(ctx, getLayer, layer)
	if err != nil {
		return nil, 0, fmt.Errorf("pandora: get layer %d: %w", layer, err)
	}
	defer rows.Close()

	b := stream.NewBuilder()
	count := 0
	for rows.Next() {
		var (
			gateType         string
			param            *float64
			qub1, qub2, qub3 *int32
		)
		if err := rows.Scan(&gateType, &param, &qub1, &qub2, &qub3); err != nil {
			return nil, 0, fmt.Errorf("pandora: scan layer %d row: %w", layer, err)
		}
		if err := appendRow(b, gateType, param, qub1, qub2, qub3); err != nil {
			return nil, 0, fmt.Errorf("pandora: layer %d: %w", layer, err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("pandora: layer %d: %w", layer, err)
	}
	return b.Bytes(), count, nil
}

func appendRow(b *stream.Builder, gateType string, param *float64, qub1, qub2, qub3 *int32) error {
	switch gateType {
	case "CX":
		if qub1 == nil || qub2 == nil {
			return fmt.Errorf("CX row missing qubit operands")
		}
		b.NonLocalClifford(opcode.CX, uint32(*qub1), uint32(*qub2))
	case "CZ":
		if qub1 == nil || qub2 == nil {
			return fmt.Errorf("CZ row missing qubit operands")
		}
		b.NonLocalClifford(opcode.CZ, uint32(*qub1), uint32(*qub2))
	case "RZ":
		if qub1 == nil {
			return fmt.Errorf("RZ row missing qubit operand")
		}
		angle := uint64(0)
		if param != nil {
			angle = math.Float64bits(*param)
		}
		b.RZ(uint32(*qub1), angle)
	default:
		op, ok := clifford.ByName(gateType)
		if !ok {
			return fmt.Errorf("unrecognized gate type %q", gateType)
		}
		if qub1 == nil {
			return fmt.Errorf("%s row missing qubit operand", gateType)
		}
		b.LocalClifford(op, uint32(*qub1))
	}
	return nil
}
