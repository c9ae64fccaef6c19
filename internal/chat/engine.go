// Package chat implements the conversation core: the selection state machine,
// pagination, the callback action codec and the engine that orchestrates them
// over the ledger services.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"salesdesk/internal/config"
	"salesdesk/internal/domain"
	"salesdesk/internal/report"
	"salesdesk/internal/service"
)

// User-facing texts. The back office runs in Russian.
const (
	msgAskPhone      = "📱 Отправьте номер телефона в формате +998XXXXXXXXX"
	msgPhoneInvalid  = "❌ Неверный формат номера. Пример: +998901234567"
	msgPhoneNotFound = "❌ Номер телефона не найден. Обратитесь к администратору."
	msgGeneralError  = "❌ Произошла ошибка. Попробуйте позже."
	msgAdminOnly     = "❌ Эта команда доступна только администраторам."
	msgMainMenu      = "🏠 Главное меню"
	msgChooseYear    = "📅 Выберите год:"
	msgChooseMonth   = "📅 Выберите месяц:"
	msgChooseCust    = "👤 Выберите покупателя:"
	msgNoData        = "❗️ Данные о продажах не найдены."
	msgCacheCleared  = "✅ Кэш очищен"
)

// Engine turns incoming chat events into replies. One instance serves all
// conversations; per-user state lives in the session store.
type Engine struct {
	sessions  *SessionStore
	ledger    service.LedgerService
	profiles  service.ProfileService
	documents service.DocumentService
	bot       config.BotConfig
	logger    *log.Logger
}

func NewEngine(
	sessions *SessionStore,
	ledger service.LedgerService,
	profiles service.ProfileService,
	documents service.DocumentService,
	bot config.BotConfig,
	logger *log.Logger,
) *Engine {
	return &Engine{
		sessions:  sessions,
		ledger:    ledger,
		profiles:  profiles,
		documents: documents,
		bot:       bot,
		logger:    logger,
	}
}

// HandleMessage processes a plain text message from a chat user.
func (e *Engine) HandleMessage(ctx context.Context, from *domain.Profile, text string) (*domain.Reply, error) {
	sel := e.sessions.Get(from.ChatID)
	text = strings.TrimSpace(text)

	switch text {
	case "/start":
		return e.handleStart(ctx, from, sel)
	case "/stats":
		return e.handleStats(ctx, from)
	case "/clear_cache":
		if !e.bot.IsAdmin(from.ChatID) {
			return &domain.Reply{Text: msgAdminOnly}, nil
		}
		e.ledger.InvalidateAll()
		return &domain.Reply{Text: msgCacheCleared}, nil
	case "/contact":
		return e.contactCard(), nil
	}

	if sel.Stage() == domain.StageAwaitingPhone {
		return e.handlePhoneSubmission(ctx, from, sel, text)
	}

	// Free text outside a prompt just re-offers the menu.
	return e.mainMenu(from.ChatID), nil
}

// HandleCallback processes a button press. Malformed payloads surface as
// ErrUnknownAction; funnel-order violations as ErrStageOrder. Upstream query
// failures are logged and answered with a generic message without advancing
// the stage.
func (e *Engine) HandleCallback(ctx context.Context, from *domain.Profile, data string) (*domain.Reply, error) {
	action, err := Decode(data)
	if err != nil {
		return nil, err
	}
	sel := e.sessions.Get(from.ChatID)

	switch a := action.(type) {
	case Noop:
		return &domain.Reply{}, nil
	case Cancel:
		sel.Cancel()
		return e.mainMenu(from.ChatID), nil
	case Contact:
		return e.contactCard(), nil
	case Menu:
		return e.enterFlow(ctx, from, sel, a.Flow)
	case Back:
		sel.Back()
		return e.renderStage(ctx, from, sel)
	case Select:
		return e.handleSelect(ctx, from, sel, a)
	case Page:
		if err := sel.SetPage(a.Index); err != nil {
			return nil, err
		}
		return e.renderStage(ctx, from, sel)
	case Doc:
		return e.handleDoc(ctx, sel, a.DocumentID)
	case Download:
		return e.handleDownload(ctx, from, sel, a.Kind)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, data)
}

func (e *Engine) handleStart(ctx context.Context, from *domain.Profile, sel *Selection) (*domain.Reply, error) {
	if err := e.profiles.Touch(ctx, from); err != nil {
		return e.fail("touch profile", err), nil
	}
	p, err := e.profiles.Get(ctx, from.ChatID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return e.fail("load profile", err), nil
	}
	if !p.Registered() && !e.bot.IsAdmin(from.ChatID) {
		sel.AwaitPhone()
		return &domain.Reply{Text: msgAskPhone}, nil
	}
	sel.Cancel()
	reply := e.mainMenu(from.ChatID)
	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if name == "" {
		name = from.Username
	}
	reply.Text = fmt.Sprintf("Добро пожаловать, %s!\n\n%s", name, msgMainMenu)
	return reply, nil
}

func (e *Engine) handleStats(ctx context.Context, from *domain.Profile) (*domain.Reply, error) {
	if !e.bot.IsAdmin(from.ChatID) {
		return &domain.Reply{Text: msgAdminOnly}, nil
	}
	count, err := e.profiles.Count(ctx)
	if err != nil {
		return e.fail("count profiles", err), nil
	}
	return &domain.Reply{Text: fmt.Sprintf("📊 Зарегистрировано пользователей: %d", count)}, nil
}

func (e *Engine) handlePhoneSubmission(ctx context.Context, from *domain.Profile, sel *Selection, text string) (*domain.Reply, error) {
	phone, err := e.profiles.RegisterPhone(ctx, from.ChatID, text)
	switch {
	case errors.Is(err, domain.ErrInvalidPhone):
		// Re-prompt, stage unchanged.
		return &domain.Reply{Text: msgPhoneInvalid + "\n\n" + msgAskPhone}, nil
	case err != nil:
		return e.fail("register phone", err), nil
	}
	sel.Cancel()
	reply := e.mainMenu(from.ChatID)
	reply.Text = fmt.Sprintf("✅ Ваш номер телефона сохранен: %s\n\n%s", phone, msgMainMenu)
	return reply, nil
}

// enterFlow starts (or restarts) a funnel. Entering mid-flow behaves as
// cancel followed by start.
func (e *Engine) enterFlow(ctx context.Context, from *domain.Profile, sel *Selection, flow domain.Flow) (*domain.Reply, error) {
	if flow.AdminOnly() && !e.bot.IsAdmin(from.ChatID) {
		return &domain.Reply{Text: msgAdminOnly}, nil
	}
	if !flow.AdminOnly() {
		if _, err := e.userPhone(ctx, from.ChatID); err != nil {
			if errors.Is(err, domain.ErrNotRegistered) {
				sel.AwaitPhone()
				return &domain.Reply{Text: msgAskPhone}, nil
			}
			return e.fail("load profile", err), nil
		}
	}
	sel.Start(flow)
	return e.promptYears(ctx)
}

func (e *Engine) handleSelect(ctx context.Context, from *domain.Profile, sel *Selection, a Select) (*domain.Reply, error) {
	switch a.Field {
	case FieldYear:
		year, err := strconv.Atoi(a.Value)
		if err != nil || year < 2000 || year > 2100 {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidYear, a.Value)
		}
		// Fetch before advancing so an empty result keeps the stage.
		months, err := e.ledger.Months(ctx, year)
		if err != nil {
			return e.fail("load months", err), nil
		}
		if len(months) == 0 {
			return e.notFoundAtStage(ctx, from, sel, msgNoData)
		}
		if err := sel.ChooseYear(year); err != nil {
			return nil, err
		}
		return e.promptMonths(months), nil

	case FieldMonth:
		month, err := strconv.Atoi(a.Value)
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMonth, a.Value)
		}
		return e.selectMonth(ctx, from, sel, month)

	case FieldCustomer:
		id, err := strconv.ParseInt(a.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: customer %q", domain.ErrUnknownAction, a.Value)
		}
		return e.selectCustomer(ctx, from, sel, id)
	}
	return nil, fmt.Errorf("%w: field %q", domain.ErrUnknownAction, a.Field)
}

// selectMonth fetches the flow's result set for year+month and only then
// advances the stage, so a month with no data keeps the user at month
// selection.
func (e *Engine) selectMonth(ctx context.Context, from *domain.Profile, sel *Selection, month int) (*domain.Reply, error) {
	year := sel.Year()
	if sel.Stage() != domain.StageAwaitingMonth {
		return nil, fmt.Errorf("%w: month chosen at stage %s", domain.ErrStageOrder, sel.Stage())
	}

	switch sel.Flow() {
	case domain.FlowUserInvoices, domain.FlowAdminInvoices:
		filter := domain.InvoiceFilter{Year: year, Month: month}
		if sel.Flow() == domain.FlowUserInvoices {
			phone, err := e.userPhone(ctx, from.ChatID)
			if err != nil {
				return e.fail("load profile", err), nil
			}
			filter.Phone = phone
		}
		invoices, err := e.ledger.ListInvoices(ctx, filter)
		if err != nil {
			return e.fail("list invoices", err), nil
		}
		if len(invoices) == 0 {
			return e.notFoundAtStage(ctx, from, sel,
				fmt.Sprintf("❗️ За %02d/%d накладные не найдены.", month, year))
		}
		if err := sel.ChooseMonth(month); err != nil {
			return nil, err
		}
		return e.renderInvoiceList(sel, invoices), nil

	case domain.FlowUserReconciliation:
		phone, err := e.userPhone(ctx, from.ChatID)
		if err != nil {
			return e.fail("load profile", err), nil
		}
		entries, err := e.ledger.CustomerLedger(ctx, phone, year, month)
		if err != nil {
			return e.fail("load ledger", err), nil
		}
		if len(entries) == 0 {
			return e.notFoundAtStage(ctx, from, sel,
				fmt.Sprintf("❌ За %02d/%d данные для акта сверки не найдены", month, year))
		}
		if err := sel.ChooseMonth(month); err != nil {
			return nil, err
		}
		name, err := e.ledger.CustomerNameByPhone(ctx, phone)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return e.fail("load customer name", err), nil
		}
		return e.renderReconciliation(entries, name, year, month), nil

	case domain.FlowAdminReconciliation:
		customers, err := e.ledger.CustomersWithActivity(ctx, year, month)
		if err != nil {
			return e.fail("list customers", err), nil
		}
		if len(customers) == 0 {
			return e.notFoundAtStage(ctx, from, sel,
				fmt.Sprintf("❌ За %02d/%d покупатели не найдены", month, year))
		}
		if err := sel.ChooseMonth(month); err != nil {
			return nil, err
		}
		return e.renderCustomerList(sel, customers), nil
	}
	return nil, fmt.Errorf("%w: flow %q", domain.ErrUnknownAction, sel.Flow())
}

func (e *Engine) selectCustomer(ctx context.Context, from *domain.Profile, sel *Selection, customerID int64) (*domain.Reply, error) {
	if sel.Stage() != domain.StageAwaitingCustomer {
		return nil, fmt.Errorf("%w: customer chosen at stage %s", domain.ErrStageOrder, sel.Stage())
	}
	customers, err := e.ledger.CustomersWithActivity(ctx, sel.Year(), sel.Month())
	if err != nil {
		return e.fail("list customers", err), nil
	}
	var customer *domain.Customer
	for i := range customers {
		if customers[i].ID == customerID {
			customer = &customers[i]
			break
		}
	}
	if customer == nil {
		return e.notFoundAtStage(ctx, from, sel, "❌ Покупатель не найден")
	}
	entries, err := e.ledger.CustomerLedger(ctx, customer.Phone, sel.Year(), sel.Month())
	if err != nil {
		return e.fail("load ledger", err), nil
	}
	if len(entries) == 0 {
		return e.notFoundAtStage(ctx, from, sel,
			fmt.Sprintf("❌ За %02d/%d данные для акта сверки не найдены", sel.Month(), sel.Year()))
	}
	if err := sel.ChooseCustomer(customer); err != nil {
		return nil, err
	}
	return e.renderReconciliation(entries, customer.Name, sel.Year(), sel.Month()), nil
}

func (e *Engine) handleDoc(ctx context.Context, sel *Selection, documentID int64) (*domain.Reply, error) {
	if err := sel.ChooseDocument(documentID); err != nil {
		return nil, err
	}
	inv, err := e.ledger.GetInvoice(ctx, documentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			sel.Back()
			return &domain.Reply{Text: "❗️ Накладная не найдена.", Buttons: [][]domain.Button{backCancelRow()}}, nil
		}
		return e.fail("load invoice", err), nil
	}
	lines, err := e.ledger.InvoiceLines(ctx, documentID)
	if err != nil {
		return e.fail("load invoice lines", err), nil
	}
	return &domain.Reply{
		Text: report.InvoiceDetails(inv, lines),
		Buttons: [][]domain.Button{
			{{Label: "📄 Скачать накладную", Data: EncodeDownload("invoice")}},
			backCancelRow(),
		},
	}, nil
}

func (e *Engine) handleDownload(ctx context.Context, from *domain.Profile, sel *Selection, kind string) (*domain.Reply, error) {
	switch kind {
	case "invoice":
		documentID := sel.DocumentID()
		if documentID == 0 {
			return nil, fmt.Errorf("%w: download before opening a document", domain.ErrStageOrder)
		}
		inv, err := e.ledger.GetInvoice(ctx, documentID)
		if err != nil {
			return e.fail("load invoice", err), nil
		}
		lines, err := e.ledger.InvoiceLines(ctx, documentID)
		if err != nil {
			return e.fail("load invoice lines", err), nil
		}
		ref, err := e.documents.InvoiceDocument(ctx, e.bot.CompanyName, inv, lines)
		if err != nil {
			return e.fail("generate invoice document", err), nil
		}
		return &domain.Reply{
			Text:     fmt.Sprintf("📄 Ваша накладная за %s %d готова!", report.MonthName(sel.Month()), sel.Year()),
			Buttons:  [][]domain.Button{menuRow()},
			Document: ref,
		}, nil

	case "act":
		phone, name, err := e.actParty(ctx, from, sel)
		if err != nil {
			if errors.Is(err, domain.ErrStageOrder) {
				return nil, err
			}
			return e.fail("resolve act party", err), nil
		}
		entries, err := e.ledger.CustomerLedger(ctx, phone, sel.Year(), sel.Month())
		if err != nil {
			return e.fail("load ledger", err), nil
		}
		params := report.BuildActParams(e.bot.CompanyName, name, sel.Year(), sel.Month(), entries)
		ref, err := e.documents.ReconciliationDocument(ctx, params, entries)
		if err != nil {
			return e.fail("generate reconciliation act", err), nil
		}
		return &domain.Reply{
			Text: fmt.Sprintf("📄 Ваш акт сверки за %s - %s готов!",
				report.FormatDate(params.PeriodStart), report.FormatDate(params.PeriodEnd)),
			Buttons:  [][]domain.Button{menuRow()},
			Document: ref,
		}, nil
	}
	return nil, fmt.Errorf("%w: download kind %q", domain.ErrUnknownAction, kind)
}

// actParty resolves whose reconciliation act is being generated: the selected
// customer in the admin flow, the caller's own registration otherwise.
func (e *Engine) actParty(ctx context.Context, from *domain.Profile, sel *Selection) (phone, name string, err error) {
	if sel.Flow() == domain.FlowAdminReconciliation {
		customer := sel.Customer()
		if customer == nil {
			return "", "", fmt.Errorf("%w: act requested before customer selection", domain.ErrStageOrder)
		}
		return customer.Phone, customer.Name, nil
	}
	phone, err = e.userPhone(ctx, from.ChatID)
	if err != nil {
		return "", "", err
	}
	name, err = e.ledger.CustomerNameByPhone(ctx, phone)
	if errors.Is(err, domain.ErrNotFound) {
		return phone, phone, nil
	}
	if err != nil {
		return "", "", err
	}
	return phone, name, nil
}

// renderStage redraws the view for the selection's current stage. Used after
// back navigation and page changes.
func (e *Engine) renderStage(ctx context.Context, from *domain.Profile, sel *Selection) (*domain.Reply, error) {
	switch sel.Stage() {
	case domain.StageIdle:
		return e.mainMenu(from.ChatID), nil
	case domain.StageAwaitingPhone:
		return &domain.Reply{Text: msgAskPhone}, nil
	case domain.StageAwaitingYear:
		return e.promptYears(ctx)
	case domain.StageAwaitingMonth:
		months, err := e.ledger.Months(ctx, sel.Year())
		if err != nil {
			return e.fail("load months", err), nil
		}
		return e.promptMonths(months), nil
	case domain.StageAwaitingCustomer:
		customers, err := e.ledger.CustomersWithActivity(ctx, sel.Year(), sel.Month())
		if err != nil {
			return e.fail("list customers", err), nil
		}
		return e.renderCustomerList(sel, customers), nil
	case domain.StageAwaitingDocument:
		return e.renderResultStage(ctx, from, sel)
	}
	return e.mainMenu(from.ChatID), nil
}

func (e *Engine) renderResultStage(ctx context.Context, from *domain.Profile, sel *Selection) (*domain.Reply, error) {
	switch sel.Flow() {
	case domain.FlowUserInvoices, domain.FlowAdminInvoices:
		if sel.DocumentID() != 0 {
			return e.handleDoc(ctx, sel, sel.DocumentID())
		}
		filter := domain.InvoiceFilter{Year: sel.Year(), Month: sel.Month()}
		if sel.Flow() == domain.FlowUserInvoices {
			phone, err := e.userPhone(ctx, from.ChatID)
			if err != nil {
				return e.fail("load profile", err), nil
			}
			filter.Phone = phone
		}
		invoices, err := e.ledger.ListInvoices(ctx, filter)
		if err != nil {
			return e.fail("list invoices", err), nil
		}
		return e.renderInvoiceList(sel, invoices), nil

	case domain.FlowUserReconciliation, domain.FlowAdminReconciliation:
		phone, name, err := e.actParty(ctx, from, sel)
		if err != nil {
			if errors.Is(err, domain.ErrStageOrder) {
				return nil, err
			}
			return e.fail("resolve act party", err), nil
		}
		entries, err := e.ledger.CustomerLedger(ctx, phone, sel.Year(), sel.Month())
		if err != nil {
			return e.fail("load ledger", err), nil
		}
		return e.renderReconciliation(entries, name, sel.Year(), sel.Month()), nil
	}
	return e.mainMenu(from.ChatID), nil
}

func (e *Engine) promptYears(ctx context.Context) (*domain.Reply, error) {
	years, err := e.ledger.Years(ctx)
	if err != nil {
		return e.fail("load years", err), nil
	}
	if len(years) == 0 {
		return &domain.Reply{Text: msgNoData, Buttons: [][]domain.Button{menuRow()}}, nil
	}
	var buttons [][]domain.Button
	var row []domain.Button
	for _, year := range years {
		row = append(row, domain.Button{
			Label: strconv.Itoa(year),
			Data:  EncodeSelect(FieldYear, strconv.Itoa(year)),
		})
		if len(row) == 3 {
			buttons = append(buttons, row)
			row = nil
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}
	buttons = append(buttons, menuRow())
	return &domain.Reply{Text: msgChooseYear, Buttons: buttons}, nil
}

func (e *Engine) promptMonths(months []int) *domain.Reply {
	var buttons [][]domain.Button
	var row []domain.Button
	for _, month := range months {
		row = append(row, domain.Button{
			Label: report.MonthName(month),
			Data:  EncodeSelect(FieldMonth, strconv.Itoa(month)),
		})
		if len(row) == 3 {
			buttons = append(buttons, row)
			row = nil
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}
	buttons = append(buttons, backCancelRow())
	return &domain.Reply{Text: msgChooseMonth, Buttons: buttons}
}

func (e *Engine) renderInvoiceList(sel *Selection, invoices []domain.InvoiceSummary) *domain.Reply {
	view := Paginate(invoices, sel.Page(), PageSize)

	var buttons [][]domain.Button
	for _, inv := range view.Items {
		buttons = append(buttons, []domain.Button{{
			Label: report.InvoiceButtonLabel(inv),
			Data:  EncodeDoc(inv.DocumentID),
		}})
	}
	if nav := NavRow(view, EncodePage); nav != nil {
		buttons = append(buttons, nav)
	}
	buttons = append(buttons, backCancelRow())

	return &domain.Reply{
		Text:    report.InvoiceListSummary(invoices, sel.Year(), sel.Month()),
		Buttons: buttons,
	}
}

func (e *Engine) renderCustomerList(sel *Selection, customers []domain.Customer) *domain.Reply {
	view := Paginate(customers, sel.Page(), PageSize)

	var buttons [][]domain.Button
	for _, c := range view.Items {
		label := c.Name
		if len([]rune(label)) > 30 {
			label = string([]rune(label)[:27]) + "..."
		}
		buttons = append(buttons, []domain.Button{{
			Label: label,
			Data:  EncodeSelect(FieldCustomer, strconv.FormatInt(c.ID, 10)),
		}})
	}
	if nav := NavRow(view, EncodePage); nav != nil {
		buttons = append(buttons, nav)
	}
	buttons = append(buttons, backCancelRow())

	return &domain.Reply{Text: msgChooseCust, Buttons: buttons}
}

func (e *Engine) renderReconciliation(entries []domain.LedgerEntry, customerName string, year, month int) *domain.Reply {
	return &domain.Reply{
		Text: report.ReconciliationSummary(entries, customerName, year, month),
		Buttons: [][]domain.Button{
			{{Label: "📄 Скачать акт сверки", Data: EncodeDownload("act")}},
			backCancelRow(),
		},
	}
}

// notFoundAtStage answers an empty result set: the message changes, the
// selection does not, and the current stage's controls are re-offered.
func (e *Engine) notFoundAtStage(ctx context.Context, from *domain.Profile, sel *Selection, text string) (*domain.Reply, error) {
	reply, err := e.renderStage(ctx, from, sel)
	if err != nil {
		return nil, err
	}
	reply.Text = text + "\n\n" + reply.Text
	return reply, nil
}

func (e *Engine) mainMenu(chatID int64) *domain.Reply {
	var buttons [][]domain.Button
	if e.bot.IsAdmin(chatID) {
		buttons = append(buttons,
			[]domain.Button{{Label: "📦 Все накладные", Data: EncodeMenu(domain.FlowAdminInvoices)}},
			[]domain.Button{{Label: "📄 Акт сверки", Data: EncodeMenu(domain.FlowAdminReconciliation)}},
		)
	} else {
		buttons = append(buttons,
			[]domain.Button{{Label: "📦 Мои накладные", Data: EncodeMenu(domain.FlowUserInvoices)}},
			[]domain.Button{{Label: "📄 Акт сверки", Data: EncodeMenu(domain.FlowUserReconciliation)}},
		)
	}
	buttons = append(buttons, []domain.Button{{Label: "📞 Контакты", Data: EncodeContact()}})
	return &domain.Reply{Text: msgMainMenu, Buttons: buttons}
}

func (e *Engine) contactCard() *domain.Reply {
	text := fmt.Sprintf("📞 %s", e.bot.CompanyName)
	if e.bot.ContactPhone != "" {
		text += fmt.Sprintf("\n📱 %s", e.bot.ContactPhone)
	}
	return &domain.Reply{Text: text, Buttons: [][]domain.Button{menuRow()}}
}

// userPhone returns the caller's registered phone or ErrNotRegistered.
func (e *Engine) userPhone(ctx context.Context, chatID int64) (string, error) {
	p, err := e.profiles.Get(ctx, chatID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrNotRegistered
	}
	if err != nil {
		return "", err
	}
	if !p.Registered() {
		return "", domain.ErrNotRegistered
	}
	return p.Phone, nil
}

// fail logs an upstream failure and degrades to a generic user message. The
// selection is left exactly as it was.
func (e *Engine) fail(op string, err error) *domain.Reply {
	e.logger.Printf("ERROR chat: %s: %v", op, err)
	return &domain.Reply{Text: msgGeneralError, Buttons: [][]domain.Button{menuRow()}}
}

func menuRow() []domain.Button {
	return []domain.Button{{Label: "🏠 Главное меню", Data: EncodeCancel()}}
}

func backCancelRow() []domain.Button {
	return []domain.Button{
		{Label: "⬅️ Назад", Data: EncodeBack()},
		{Label: "🏠 Главное меню", Data: EncodeCancel()},
	}
}
