package database

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rimatec/vistoria/model"
)

// TimeFormat is the data_envio column format. Lexicographic order on
// this format coincides with chronological order, which /historico
// relies on.
const TimeFormat = "2006-01-02 15:04:05"

// InsertVistoria writes one row, assigning data_envio server-side, and
// returns the generated id. A failed insert leaves no row behind.
func InsertVistoria(ctx context.Context, db *sql.DB, v model.Vistoria) (int, error) {
	names := make([]string, len(model.Fields))
	for i, f := range model.Fields {
		names[i] = f.Name
	}

	args := make([]any, 0, len(model.Fields)+1)
	for _, value := range v.Values() {
		args = append(args, value)
	}
	args = append(args, time.Now().Format(TimeFormat))

	var id int
	err := db.QueryRowContext(ctx, `
		INSERT INTO vistorias (`+strings.Join(names, ", ")+`, data_envio)
		VALUES (?`+strings.Repeat(", ?", len(args)-1)+`)
		RETURNING id`,
		args...,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insert vistoria")
	}
	return id, nil
}

// ListVistorias returns the summary of every recorded vistoria, most
// recent first.
func ListVistorias(ctx context.Context, db *sql.DB) ([]model.VistoriaSummary, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, condominio, cidade, estado, tecnico, data_envio
		FROM vistorias
		ORDER BY data_envio DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "list vistorias")
	}
	defer rows.Close()

	summaries := []model.VistoriaSummary{}
	for rows.Next() {
		s := model.VistoriaSummary{}
		err = rows.Scan(&s.ID, &s.Condominio, &s.Cidade, &s.Estado, &s.Tecnico, &s.DataEnvio)
		if err != nil {
			return nil, errors.Wrap(err, "scan vistoria summary")
		}
		summaries = append(summaries, s)
	}
	return summaries, errors.Wrap(rows.Err(), "list vistorias")
}

// GetVistoria retrieves one full record by id.
func GetVistoria(ctx context.Context, db *sql.DB, id int) (model.Vistoria, error) {
	v := model.Vistoria{}
	err := db.QueryRowContext(ctx, `
		SELECT
			id, endereco, condominio, cidade, estado, blocos, andares,
			apts_andar, num_1andar_ini, num_1andar_fim, num_ultandar_ini,
			num_ultandar_fim, total_apts, dist_poste_dg, duas_prumadas,
			dist_prumada1, dist_prumada2, sala_terreo, sindico,
			contato_sindico, area_tecnica, node_hfc, imovel, tecnico,
			data_envio
		FROM vistorias
		WHERE id = ?`,
		id,
	).Scan(
		&v.ID, &v.Endereco, &v.Condominio, &v.Cidade, &v.Estado,
		&v.Blocos, &v.Andares, &v.AptsAndar, &v.Num1AndarIni,
		&v.Num1AndarFim, &v.NumUltAndarIni, &v.NumUltAndarFim,
		&v.TotalApts, &v.DistPosteDG, &v.DuasPrumadas, &v.DistPrumada1,
		&v.DistPrumada2, &v.SalaTerreo, &v.Sindico, &v.ContatoSindico,
		&v.AreaTecnica, &v.NodeHFC, &v.Imovel, &v.Tecnico, &v.DataEnvio,
	)
	return v, errors.Wrap(err, "get vistoria")
}
