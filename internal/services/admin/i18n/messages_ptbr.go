package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, "app.name", "Progressive Bar")
	message.SetString(lang, "app.admin", "Administração")
	message.SetString(lang, "language.label", "Idioma")
	message.SetString(lang, "language.en", "English")
	message.SetString(lang, "language.pt-BR", "Português (Brasil)")

	message.SetString(lang, "nav.dashboard", "Painel")
	message.SetString(lang, "nav.orders", "Pedidos")
	message.SetString(lang, "nav.menu", "Cardápio")
	message.SetString(lang, "nav.qr", "QR Codes")
	message.SetString(lang, "nav.logout", "Sair")
	message.SetString(lang, "nav.signed_in_as", "Conectado como %s")

	message.SetString(lang, "login.title", "Entrar")
	message.SetString(lang, "login.subtitle", "Painel administrativo do restaurante")
	message.SetString(lang, "login.email", "E-mail")
	message.SetString(lang, "login.password", "Senha")
	message.SetString(lang, "login.submit", "Entrar")

	message.SetString(lang, "dashboard.title", "Painel")
	message.SetString(lang, "dashboard.loading", "Carregando painel...")
	message.SetString(lang, "dashboard.stats.pending", "Pedidos pendentes")
	message.SetString(lang, "dashboard.stats.preparing", "Em preparo")
	message.SetString(lang, "dashboard.stats.completed_today", "Concluídos hoje")
	message.SetString(lang, "dashboard.stats.avg_wait", "Espera média")
	message.SetString(lang, "dashboard.stats.minutes", "%s min")
	message.SetString(lang, "dashboard.recent", "Pedidos recentes")
	message.SetString(lang, "dashboard.recent.empty", "Nenhum pedido ainda")
	message.SetString(lang, "dashboard.view_all", "Ver todos")
	message.SetString(lang, "dashboard.refreshed", "Atualizado às %s")
	message.SetString(lang, "dashboard.refresh", "Atualizar")

	message.SetString(lang, "orders.title", "Pedidos")
	message.SetString(lang, "orders.loading", "Carregando pedidos...")
	message.SetString(lang, "orders.empty", "Nenhum pedido encontrado")
	message.SetString(lang, "orders.refresh", "Atualizar")
	message.SetString(lang, "orders.table", "Mesa %s")
	message.SetString(lang, "orders.subtotal", "Subtotal")
	message.SetString(lang, "orders.tax", "Taxa")
	message.SetString(lang, "orders.total", "Total")
	message.SetString(lang, "orders.wait", "Espera estimada: %d min")
	message.SetString(lang, "orders.notes", "Observações")
	message.SetString(lang, "orders.completed", "Pedido finalizado")
	message.SetString(lang, "orders.updated", "O pedido da mesa %s agora está %s")
	message.SetString(lang, "orders.filter.active", "Ativos")
	message.SetString(lang, "orders.filter.all", "Todos")
	message.SetString(lang, "orders.filter.pending", "Pendentes")
	message.SetString(lang, "orders.filter.confirmed", "Confirmados")
	message.SetString(lang, "orders.filter.preparing", "Em preparo")
	message.SetString(lang, "orders.filter.ready", "Prontos")
	message.SetString(lang, "orders.filter.delivered", "Entregues")
	message.SetString(lang, "orders.filter.cancelled", "Cancelados")
	message.SetString(lang, "orders.status.pending", "Pendente")
	message.SetString(lang, "orders.status.confirmed", "Confirmado")
	message.SetString(lang, "orders.status.preparing", "Em preparo")
	message.SetString(lang, "orders.status.ready", "Pronto")
	message.SetString(lang, "orders.status.delivered", "Entregue")
	message.SetString(lang, "orders.status.cancelled", "Cancelado")
	message.SetString(lang, "orders.action.confirm", "Confirmar")
	message.SetString(lang, "orders.action.cancel", "Cancelar")
	message.SetString(lang, "orders.action.start_preparing", "Iniciar preparo")
	message.SetString(lang, "orders.action.mark_ready", "Marcar como pronto")
	message.SetString(lang, "orders.action.mark_delivered", "Marcar como entregue")

	message.SetString(lang, "qr.title", "QR Codes")
	message.SetString(lang, "qr.subtitle", "Gere QR codes para pedidos nas mesas")
	message.SetString(lang, "qr.single.title", "Mesa única")
	message.SetString(lang, "qr.single.label", "Número da mesa")
	message.SetString(lang, "qr.single.submit", "Gerar")
	message.SetString(lang, "qr.download", "Baixar")
	message.SetString(lang, "qr.batch.title", "Geração em lote (pronto para A4)")
	message.SetString(lang, "qr.batch.hint", "Gera 9 QR codes por página A4, otimizados para impressão e corte")
	message.SetString(lang, "qr.batch.from", "Da mesa")
	message.SetString(lang, "qr.batch.to", "Até a mesa")
	message.SetString(lang, "qr.batch.submit", "Gerar lote")
	message.SetString(lang, "qr.batch.summary", "%d códigos em %d páginas")
	message.SetString(lang, "qr.print", "Imprimir tudo (A4)")
	message.SetString(lang, "qr.empty", "Nenhum QR code gerado ainda")
	message.SetString(lang, "qr.alt", "QR da %s")

	message.SetString(lang, "menu.title", "Cardápio")
	message.SetString(lang, "menu.coming_soon", "O gerenciamento do cardápio chegará em breve.")

	message.SetString(lang, "error.authentication", "Falha no login")
	message.SetString(lang, "error.session_invalid", "Sua sessão expirou. Entre novamente.")
	message.SetString(lang, "error.network", "Não foi possível contatar o servidor. Exibindo os últimos dados carregados.")
	message.SetString(lang, "error.validation", "Verifique os dados informados.")
	message.SetString(lang, "error.rejected", "O servidor recusou a solicitação.")
	message.SetString(lang, "error.unknown", "Algo deu errado.")
	message.SetString(lang, "error.csrf_invalid", "Origem da solicitação inválida")
	message.SetString(lang, "error.method_not_allowed", "Método não permitido")
}
