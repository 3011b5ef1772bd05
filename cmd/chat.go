package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/lex-job-assistant/internal/bot"
)

const chatExit = "exit"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the deployed Lex bot",
	Run: func(cmd *cobra.Command, _ []string) {
		chat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func chat(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := setup()

	session, err := bot.New(ctx, config.BotConfig(), logger)
	if err != nil {
		logger.Fatal("creating a bot session", zap.Error(err))
	}

	logger.Info("starting the conversation",
		zap.String("bot_id", config.Bot.ID),
		zap.String("session_id", session.ID),
		zap.String("hint", fmt.Sprintf("type %q to quit", chatExit)),
	)

	prompt := promptui.Prompt{Label: "You"}
	out := cmd.OutOrStdout()

	for {
		text, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return
			}
			logger.Fatal("reading input", zap.Error(err))
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if strings.EqualFold(text, chatExit) {
			return
		}

		reply, err := session.Send(ctx, text)
		if err != nil {
			logger.Error("sending to the bot", zap.Error(err))
			continue
		}

		printReply(out, reply)
	}
}

func printReply(w io.Writer, reply *bot.Reply) {
	if len(reply.Messages) == 0 {
		fmt.Fprintf(w, "Bot (%s, %s): <no message>\n", reply.Intent, reply.State)
		return
	}
	for _, message := range reply.Messages {
		fmt.Fprintf(w, "Bot (%s, %s): %s\n", reply.Intent, reply.State, message)
	}
}
