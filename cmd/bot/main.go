package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SeungJin051/trelio-sub001/internal/currency"
	"github.com/SeungJin051/trelio-sub001/internal/model"
	"github.com/SeungJin051/trelio-sub001/internal/realtime"
	"github.com/SeungJin051/trelio-sub001/internal/repository"
	"github.com/SeungJin051/trelio-sub001/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

// Подписи действий журнала для уведомлений.
var actionLabels = map[string]string{
	model.ActionBlockCreated: "добавлен блок",
	model.ActionBlockUpdated: "изменен блок",
	model.ActionBlockMoved:   "перемещен блок",
	model.ActionBlockDeleted: "удален блок",
	model.ActionTodoCreated:  "добавлена задача",
	model.ActionTodoUpdated:  "изменена задача",
	model.ActionTodoDeleted:  "удалена задача",
	model.ActionMemberJoined: "присоединился участник",
	model.ActionRoleChanged:  "изменена роль участника",
	model.ActionPlanUpdated:  "обновлен план",
}

func main() {
	godotenv.Load()

	// Подключение к базе данных
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "db"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort,
		os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_NAME"),
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	// Инициализация репозиториев и сервисов
	profileRepo := repository.NewProfileRepository(db)
	planRepo := repository.NewPlanRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	notificationService := service.NewNotificationService(profileRepo, subRepo, participantRepo, planRepo)

	// Инициализация Telegram Bot API
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal("Не указан токен бота (BOT_TOKEN)")
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Fatal("Ошибка инициализации бота:", err)
	}
	log.Printf("Запущен бот %s", bot.Self.UserName)

	// Рассылка уведомлений о новых записях журнала
	go notifyLoop(dsn, bot, planRepo, activityRepo, notificationService)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		// --- CallbackQuery (inline buttons) ---
		if cq := update.CallbackQuery; cq != nil {
			bot.Request(tgbotapi.NewCallback(cq.ID, ""))
			// Message бывает nil (слишком старое сообщение); бот работает
			// в личных чатах, поэтому чат совпадает с отправителем
			chatID := cq.From.ID
			data := cq.Data

			switch {
			case strings.HasPrefix(data, "SUB_"):
				planID, _ := strconv.Atoi(strings.TrimPrefix(data, "SUB_"))
				if err := notificationService.Subscribe(chatID, planID); err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось оформить подписку."))
				} else {
					bot.Send(tgbotapi.NewMessage(chatID, "Подписка оформлена. Буду присылать обновления плана."))
				}
			case strings.HasPrefix(data, "UNSUB_"):
				planID, _ := strconv.Atoi(strings.TrimPrefix(data, "UNSUB_"))
				if err := notificationService.Unsubscribe(chatID, planID); err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось отменить подписку."))
				} else {
					bot.Send(tgbotapi.NewMessage(chatID, "Подписка отменена."))
				}
			}
			continue
		}

		if update.Message == nil {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID

		switch {
		case msg.IsCommand() && msg.Command() == "start":
			bot.Send(tgbotapi.NewMessage(chatID,
				"Привет! Я присылаю обновления планов путешествий.\n"+
					"Получите код в приложении и привяжите аккаунт: /link КОД\n"+
					"Затем выберите планы командой /plans"))

		case msg.IsCommand() && msg.Command() == "link":
			code := strings.TrimSpace(msg.CommandArguments())
			if code == "" {
				bot.Send(tgbotapi.NewMessage(chatID, "Укажите код: /link КОД"))
				continue
			}
			profile, err := notificationService.LinkChat(code, chatID)
			if err != nil {
				bot.Send(tgbotapi.NewMessage(chatID, "Код не найден или уже использован."))
				continue
			}
			bot.Send(tgbotapi.NewMessage(chatID,
				fmt.Sprintf("Аккаунт %s привязан. Команда /plans покажет ваши планы.", profile.Email)))

		case msg.IsCommand() && msg.Command() == "plans":
			plans, err := notificationService.PlansForChat(chatID)
			if err != nil {
				bot.Send(tgbotapi.NewMessage(chatID, "Сначала привяжите аккаунт: /link КОД"))
				continue
			}
			if len(plans) == 0 {
				bot.Send(tgbotapi.NewMessage(chatID, "У вас пока нет планов."))
				continue
			}
			for _, p := range plans {
				text := fmt.Sprintf("%s - %s", p.Title, p.Location)
				if p.TargetBudget > 0 {
					text += fmt.Sprintf(", бюджет %s", currency.Format(p.TargetBudget, p.BudgetCurrency))
				}
				reply := tgbotapi.NewMessage(chatID, text)
				btnSub := tgbotapi.NewInlineKeyboardButtonData("Подписаться", fmt.Sprintf("SUB_%d", p.ID))
				btnUnsub := tgbotapi.NewInlineKeyboardButtonData("Отписаться", fmt.Sprintf("UNSUB_%d", p.ID))
				reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btnSub, btnUnsub))
				bot.Send(reply)
			}

		default:
			bot.Send(tgbotapi.NewMessage(chatID, "Команды: /link КОД, /plans"))
		}
	}
}

// notifyLoop слушает канал изменений Postgres и рассылает подписчикам
// уведомления о новых записях журнала действий.
func notifyLoop(dsn string, bot *tgbotapi.BotAPI, planRepo *repository.PlanRepository,
	activityRepo *repository.ActivityRepository, ns *service.NotificationService) {
	listener := pq.NewListener(dsn, 2*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("Ошибка слушателя Postgres: %v", err)
		}
	})
	defer listener.Close()
	if err := listener.Listen(realtime.NotifyChannel); err != nil {
		log.Fatalf("Не удалось подписаться на канал уведомлений: %v", err)
	}

	for n := range listener.Notify {
		if n == nil {
			continue
		}
		var payload struct {
			Table  string `json:"table"`
			PlanID int    `json:"plan_id"`
		}
		if err := json.Unmarshal([]byte(n.Extra), &payload); err != nil {
			log.Printf("Некорректная нагрузка NOTIFY: %v", err)
			continue
		}
		// Чаты уведомляем только о записях журнала, остальные таблицы
		// порождают их сами
		if payload.Table != "activities" {
			continue
		}

		chats, err := ns.SubscriberChats(payload.PlanID)
		if err != nil || len(chats) == 0 {
			continue
		}
		plan, err := planRepo.GetByID(payload.PlanID)
		if err != nil {
			if err != sql.ErrNoRows {
				log.Printf("Не удалось прочитать план %d: %v", payload.PlanID, err)
			}
			continue
		}
		activities, err := activityRepo.ListByPlan(payload.PlanID, 1)
		if err != nil || len(activities) == 0 {
			continue
		}
		last := activities[0]
		label := actionLabels[last.Action]
		if label == "" {
			label = last.Action
		}
		text := fmt.Sprintf("«%s»: %s", plan.Title, label)
		if last.Detail != "" {
			text += fmt.Sprintf(" - %s", last.Detail)
		}
		for _, chatID := range chats {
			bot.Send(tgbotapi.NewMessage(chatID, text))
		}
	}
}
