package domain

// FasesOrdenadas lists the three phases in board order.
var FasesOrdenadas = []FaseNome{FaseDiagnostico, FasePosicionamento, FaseTracao}

// EtapasPorFase is the fixed step catalog: 8 + 5 + 10 = 23 etapas.
// Seeded once at startup; not user-editable.
var EtapasPorFase = map[FaseNome][]string{
	FaseDiagnostico: {
		"Análise da situação atual",
		"Análise de mercado",
		"Diagnóstico do processo comercial",
		"Mapeamento da jornada do cliente",
		"Avaliação de canais ativos e funil atual",
		"Persona",
		"Matriz SWOT",
		"Benchmark com concorrentes",
	},
	FasePosicionamento: {
		"Proposta de valor",
		"Visão de futuro",
		"Plano de ação",
		"Criação de linha editorial",
		"Posicionamento",
	},
	FaseTracao: {
		"Tráfego e Comercial - Construção do funil",
		"Tráfego e Comercial - Planejamento de campanha",
		"Gestor de tráfego - Anúncios com foco em performance",
		"Comercial - Implantação ou reestruturação de CRM",
		"Comercial - Script de prospecção",
		"Comercial - Estruturação de pitch comercial por persona",
		"Comercial - Diretrizes de argumentação de vendas",
		"Comercial - Treinamento de time comercial",
		"Comercial - CRM (trabalho de base/conversão)",
		"Comercial - Pesquisa com clientes",
	},
}

// TotalEtapas returns the size of the full catalog.
func TotalEtapas() int {
	total := 0
	for _, etapas := range EtapasPorFase {
		total += len(etapas)
	}
	return total
}
