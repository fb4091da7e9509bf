package mailer

import (
	"strings"
	"testing"

	"github.com/rimatec/vistoria/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	v := model.Vistoria{Condominio: "Residencial Aurora"}
	assert.Equal(t, "Nova Vistoria - Residencial Aurora", Subject(v))
}

func TestBodyListsEveryFieldInFormOrder(t *testing.T) {
	v := model.Vistoria{
		Endereco:   "Rua das Flores, 100",
		Condominio: "Residencial Aurora",
		Cidade:     "Curitiba",
		Tecnico:    "João Silva",
	}

	lines := strings.Split(Body(v), "\n")
	require.Len(t, lines, len(model.Fields))

	assert.Equal(t, "Endereço: Rua das Flores, 100", lines[0])
	assert.Equal(t, "Nome do Condomínio: Residencial Aurora", lines[1])
	assert.Equal(t, "Técnico responsável: João Silva", lines[len(lines)-1])

	for i, f := range model.Fields {
		assert.True(t, strings.HasPrefix(lines[i], f.Label+": "),
			"line %d should start with label %q, got %q", i, f.Label, lines[i])
	}
}

func TestBodyRendersEmptyValuesAsEmpty(t *testing.T) {
	lines := strings.Split(Body(model.Vistoria{}), "\n")
	require.Len(t, lines, len(model.Fields))
	for i, f := range model.Fields {
		assert.Equal(t, f.Label+": ", lines[i])
	}
}
