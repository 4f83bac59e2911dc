package utils

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

var ptBRMessages = []*i18n.Message{
	{ID: "level.very-low", Other: "Muito Baixo"},
	{ID: "level.low", Other: "Baixo"},
	{ID: "level.moderate", Other: "Moderado"},
	{ID: "level.high", Other: "Alto"},
	{ID: "level.very-high", Other: "Muito Alto"},

	{ID: "message.controlled", Other: "Índice de cárie controlado."},
	{ID: "message.intervention", Other: "Necessidade de uma intervenção odontológica incisiva."},

	{ID: "report.title", Other: "Relatório CEO-D"},
	{ID: "report.summary_title", Other: "Resumo Geral"},
	{ID: "report.date", Other: "Data: {{.Date}}"},
	{ID: "report.record_count", Other: "Total de registros: {{.Count}}"},
	{ID: "report.total_children", Other: "Total de crianças: {{.Count}}"},
	{ID: "report.average_index", Other: "Média CEO-D: {{.Average}}"},
	{ID: "report.carious_total", Other: "Cariados: {{.Count}}"},
	{ID: "report.extracted_filled_total", Other: "Extraídos/Obturados: {{.Count}}"},
	{ID: "report.footer_legend", Other: "C: Cariados | E: Extraídos | O: Obturados"},
	{ID: "report.page", Other: "Página {{.Page}}"},
	{ID: "report.date_layout", Other: "02/01/2006"},
	{ID: "report.column.city", Other: "Cidade"},
	{ID: "report.column.neighborhood", Other: "Bairro"},
	{ID: "report.column.index", Other: "CEO-D"},
	{ID: "report.column.level", Other: "Nível"},
	{ID: "report.column.carious", Other: "C"},
	{ID: "report.column.extracted", Other: "E"},
	{ID: "report.column.filled", Other: "O"},
	{ID: "report.column.children", Other: "Crianças"},
	{ID: "report.column.date", Other: "Data"},

	{ID: "errors.999", Other: "Erro interno do servidor."},
	{ID: "errors.1010", Other: "Parâmetros inválidos."},
	{ID: "errors.1011", Other: "Não foi possível interpretar a requisição."},
	{ID: "errors.1012", Other: "Cidade e bairro são obrigatórios."},
	{ID: "errors.1200", Other: "Registro não encontrado."},
	{ID: "errors.1201", Other: "Erro ao salvar o registro."},
	{ID: "errors.1202", Other: "Erro ao atualizar registro."},
	{ID: "errors.1203", Other: "Erro ao excluir registro."},
	{ID: "errors.1204", Other: "Erro ao buscar resultados."},
	{ID: "errors.1205", Other: "A exclusão precisa ser confirmada."},
	{ID: "errors.1300", Other: "Nenhum resultado cadastrado."},
	{ID: "errors.1301", Other: "Erro ao gerar o PDF. Por favor, tente novamente."},
}

var enMessages = []*i18n.Message{
	{ID: "level.very-low", Other: "Very Low"},
	{ID: "level.low", Other: "Low"},
	{ID: "level.moderate", Other: "Moderate"},
	{ID: "level.high", Other: "High"},
	{ID: "level.very-high", Other: "Very High"},

	{ID: "message.controlled", Other: "Controlled decay index."},
	{ID: "message.intervention", Other: "Need for incisive dental intervention."},

	{ID: "report.title", Other: "CEO-D Report"},
	{ID: "report.summary_title", Other: "Overall Summary"},
	{ID: "report.date", Other: "Date: {{.Date}}"},
	{ID: "report.record_count", Other: "Total records: {{.Count}}"},
	{ID: "report.total_children", Other: "Total children: {{.Count}}"},
	{ID: "report.average_index", Other: "Average CEO-D: {{.Average}}"},
	{ID: "report.carious_total", Other: "Decayed: {{.Count}}"},
	{ID: "report.extracted_filled_total", Other: "Extracted/Filled: {{.Count}}"},
	{ID: "report.footer_legend", Other: "C: Decayed | E: Extracted | O: Filled"},
	{ID: "report.page", Other: "Page {{.Page}}"},
	{ID: "report.date_layout", Other: "1/2/2006"},
	{ID: "report.column.city", Other: "City"},
	{ID: "report.column.neighborhood", Other: "Neighborhood"},
	{ID: "report.column.index", Other: "CEO-D"},
	{ID: "report.column.level", Other: "Level"},
	{ID: "report.column.carious", Other: "C"},
	{ID: "report.column.extracted", Other: "E"},
	{ID: "report.column.filled", Other: "O"},
	{ID: "report.column.children", Other: "Children"},
	{ID: "report.column.date", Other: "Date"},

	{ID: "errors.999", Other: "Internal server error."},
	{ID: "errors.1010", Other: "Invalid parameters."},
	{ID: "errors.1011", Other: "Cannot parse request."},
	{ID: "errors.1012", Other: "City and neighborhood are required."},
	{ID: "errors.1200", Other: "Record not found."},
	{ID: "errors.1201", Other: "Error saving record."},
	{ID: "errors.1202", Other: "Error updating record."},
	{ID: "errors.1203", Other: "Error deleting record."},
	{ID: "errors.1204", Other: "Error fetching results."},
	{ID: "errors.1205", Other: "Deletion must be confirmed."},
	{ID: "errors.1300", Other: "No results registered."},
	{ID: "errors.1301", Other: "Error generating the PDF. Please try again."},
}
