package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/game"
)

var scanner = bufio.NewScanner(os.Stdin)

// SetInput replaces the reader prompts consume, stdin by default.
func SetInput(r io.Reader) {
	scanner = bufio.NewScanner(r)
}

func readLine() (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func PromptString(message string) (string, error) {
	for {
		Println(message)
		input, err := readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			Println(consts.ErrorsInputInvalid.With("text must not be empty").Error())
			continue
		}
		return input, nil
	}
}

func promptInteger(message string, fallback *int) (int, error) {
	for {
		Println(message)
		input, err := readLine()
		if err != nil {
			return 0, err
		}
		if input == "" && fallback != nil {
			return *fallback, nil
		}
		value, err := strconv.Atoi(input)
		if err != nil {
			Println(consts.ErrorsInputInvalid.With("'%s' is not a number", input).Error())
			continue
		}
		return value, nil
	}
}

// PromptIntegerWithDefault accepts an empty line as fallback.
func PromptIntegerWithDefault(minimum int, maximum int, fallback int, message string) (int, error) {
	return promptIntegerInRange(minimum, maximum, message, &fallback)
}

func promptIntegerInRange(minimum int, maximum int, message string, fallback *int) (int, error) {
	for {
		input, err := promptInteger(message, fallback)
		if err != nil {
			return 0, err
		}
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input, nil
	}
}

// PromptNames asks for amount player names that differ ignoring case, as steal
// targets are matched that way.
func PromptNames(amount int) ([]string, error) {
	names := make([]string, 0, amount)
	taken := map[string]bool{}
	for len(names) < amount {
		name, err := PromptString(fmt.Sprintf("Enter the name of player %d:", len(names)+1))
		if err != nil {
			return nil, err
		}
		if taken[strings.ToLower(name)] {
			Printfln("%s is already playing", name)
			continue
		}
		taken[strings.ToLower(name)] = true
		names = append(names, name)
	}
	return names, nil
}

// PromptDecision asks the active player to score or to steal, and from whom
// when there is more than one opponent.
func PromptDecision(view game.View) (consts.ActionID, string, error) {
	for {
		input, err := PromptString("Would you like to score or steal?")
		if err != nil {
			return 0, "", err
		}
		switch strings.ToLower(input) {
		case "score":
			return consts.ActionScore, "", nil
		case "steal":
			target, err := promptTarget(view.OpponentNames())
			return consts.ActionSteal, target, err
		default:
			Printfln("Unknown action '%s'", input)
		}
	}
}

func promptTarget(opponents []string) (string, error) {
	if len(opponents) == 1 {
		return opponents[0], nil
	}
	message := "From who? (" + strings.Join(opponents, ", ") + ")"
	for {
		input, err := PromptString(message)
		if err != nil {
			return "", err
		}
		for _, name := range opponents {
			if strings.EqualFold(name, input) {
				return name, nil
			}
		}
		Printfln("No opponent named '%s'", input)
	}
}
