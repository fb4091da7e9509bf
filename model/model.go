package model

// Vistoria is one building-inspection submission. Every descriptive
// field is free text: the form accepts whatever the technician types,
// including nothing at all.
type Vistoria struct {
	ID             int
	Endereco       string
	Condominio     string
	Cidade         string
	Estado         string
	Blocos         string
	Andares        string
	AptsAndar      string
	Num1AndarIni   string
	Num1AndarFim   string
	NumUltAndarIni string
	NumUltAndarFim string
	TotalApts      string
	DistPosteDG    string
	DuasPrumadas   string
	DistPrumada1   string
	DistPrumada2   string
	SalaTerreo     string
	Sindico        string
	ContatoSindico string
	AreaTecnica    string
	NodeHFC        string
	Imovel         string
	Tecnico        string
	DataEnvio      string
}

// VistoriaSummary is the tuple rendered on the /historico page.
type VistoriaSummary struct {
	ID         int
	Condominio string
	Cidade     string
	Estado     string
	Tecnico    string
	DataEnvio  string
}

type Field struct {
	Name  string // form field and database column name
	Label string // human label, also used as the email body key
}

// Fields lists every vistoria field in form order. The order is load
// bearing: it fixes the insert column order and the line order of the
// notification email body.
var Fields = []Field{
	{"endereco", "Endereço"},
	{"condominio", "Nome do Condomínio"},
	{"cidade", "Cidade"},
	{"estado", "Estado"},
	{"blocos", "Quantidade de blocos"},
	{"andares", "Quantidade de Andares"},
	{"apts_andar", "Apartamentos por andar"},
	{"num_1andar_ini", "Numeração inicial 1º andar"},
	{"num_1andar_fim", "Numeração final 1º andar"},
	{"num_ultandar_ini", "Numeração inicial último andar"},
	{"num_ultandar_fim", "Numeração final último andar"},
	{"total_apts", "Total de apartamentos"},
	{"dist_poste_dg", "Distância Poste → DG"},
	{"duas_prumadas", "Duas prumadas?"},
	{"dist_prumada1", "Distância DG → Prumada 1"},
	{"dist_prumada2", "Distância DG → Prumada 2"},
	{"sala_terreo", "Sala comerciais no térreo?"},
	{"sindico", "Nome do Síndico"},
	{"contato_sindico", "Contato do Síndico"},
	{"area_tecnica", "Área Técnica"},
	{"node_hfc", "Node HFC"},
	{"imovel", "Imóvel"},
	{"tecnico", "Técnico responsável"},
}

// FromForm maps submitted form values to a Vistoria, one explicit get
// per field. No validation: absent fields come through as "".
func FromForm(get func(string) string) Vistoria {
	return Vistoria{
		Endereco:       get("endereco"),
		Condominio:     get("condominio"),
		Cidade:         get("cidade"),
		Estado:         get("estado"),
		Blocos:         get("blocos"),
		Andares:        get("andares"),
		AptsAndar:      get("apts_andar"),
		Num1AndarIni:   get("num_1andar_ini"),
		Num1AndarFim:   get("num_1andar_fim"),
		NumUltAndarIni: get("num_ultandar_ini"),
		NumUltAndarFim: get("num_ultandar_fim"),
		TotalApts:      get("total_apts"),
		DistPosteDG:    get("dist_poste_dg"),
		DuasPrumadas:   get("duas_prumadas"),
		DistPrumada1:   get("dist_prumada1"),
		DistPrumada2:   get("dist_prumada2"),
		SalaTerreo:     get("sala_terreo"),
		Sindico:        get("sindico"),
		ContatoSindico: get("contato_sindico"),
		AreaTecnica:    get("area_tecnica"),
		NodeHFC:        get("node_hfc"),
		Imovel:         get("imovel"),
		Tecnico:        get("tecnico"),
	}
}

// Values returns the field values in Fields order.
func (v Vistoria) Values() []string {
	return []string{
		v.Endereco,
		v.Condominio,
		v.Cidade,
		v.Estado,
		v.Blocos,
		v.Andares,
		v.AptsAndar,
		v.Num1AndarIni,
		v.Num1AndarFim,
		v.NumUltAndarIni,
		v.NumUltAndarFim,
		v.TotalApts,
		v.DistPosteDG,
		v.DuasPrumadas,
		v.DistPrumada1,
		v.DistPrumada2,
		v.SalaTerreo,
		v.Sindico,
		v.ContatoSindico,
		v.AreaTecnica,
		v.NodeHFC,
		v.Imovel,
		v.Tecnico,
	}
}
