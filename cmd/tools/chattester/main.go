package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rmncha/health-assistant/backend/internal/analysis/topic"
	"github.com/rmncha/health-assistant/backend/internal/config"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	"github.com/rmncha/health-assistant/backend/internal/service/assistant"
	"github.com/rmncha/health-assistant/backend/internal/service/chat"
	"github.com/rmncha/health-assistant/backend/internal/service/speech"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] 无法加载 .env，改用系统环境变量: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	language := flag.String("lang", string(cfg.Assistant.DefaultLanguage), "会话语言: en 或 hi")
	text := flag.String("text", "", "单次提问文本，留空则从标准输入逐行读取")
	delay := flag.Duration("delay", 0, "模拟回复延迟，默认不等待")
	speak := flag.Bool("speak", false, "为每条回复输出朗读参数")
	outputPath := flag.String("out", "", "会话记录导出路径")
	timeout := flag.Duration("timeout", 30*time.Second, "单次请求超时时间")

	flag.Parse()

	table := locale.MustDefault()
	chatSvc := chat.NewService(table, assistant.NewService(table, assistant.WithDelay(*delay)))
	session := chatSvc.Open(locale.Resolve(*language))

	var speaker speech.Speaker = speech.Noop{}
	if *speak {
		speaker = speech.FuncSpeaker{Send: printUtterance}
	}
	reply := func(content string) {
		fmt.Println(content)
		if err := speaker.Speak(context.Background(), content, session.Language()); err != nil {
			log.Printf("[chattester] speak failed: %v", err)
		}
	}

	greeting, _ := session.LastAssistantMessage()
	reply(greeting.Content)

	ask := func(line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()

		log.Printf("[chattester] topic=%s", topic.Classify(line, session.Language()))
		msg, err := session.Submit(ctx, line)
		if err != nil {
			log.Printf("[chattester] submit failed: %v", err)
		}
		reply(msg.Content)
	}

	if *text != "" {
		ask(*text)
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			ask(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Fatalf("读取输入失败: %v", err)
		}
	}

	if *outputPath != "" {
		if err := writeTranscript(*outputPath, session.Transcript()); err != nil {
			log.Fatalf("导出会话记录失败: %v", err)
		}
		log.Printf("会话记录已写入 %s", *outputPath)
	}
}

func printUtterance(u speech.Utterance) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	fmt.Printf("  speak: %s\n", payload)
	return nil
}

func writeTranscript(path, transcript string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(transcript), 0o644)
}
