package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenThemes
	screenConfig
)

type clockMsg struct{}
type soundMsg struct{}

type Model struct {
	screen      Screen
	width       int
	height      int
	menuIndex   int
	configIndex int
	themeIndex  int
	config      Config
	game        *Game
	sound       *SoundEngine
	music       *MusicPlayer
}

func NewModel() Model {
	config, _ := loadConfig()
	index := themeIndexByName(config.Theme)
	if index < 0 {
		index = 0
		config.Theme = themes[index].Name
	}
	ctx, sampleRate, err := initAudioContext()
	if err != nil {
		DebugLogf("audio context init error: %v", err)
	}
	sound := NewSoundEngine(ctx, sampleRate, config.Sound)
	sound.SetVolume(volumeFromPercent(config.Volume))
	return Model{
		screen:     screenMenu,
		config:     config,
		themeIndex: index,
		game:       NewGame(),
		sound:      sound,
		music:      NewMusicPlayer(ctx, sampleRate, volumeFromPercent(config.Volume)),
	}
}

func (m Model) Init() tea.Cmd {
	return m.syncMusicForScreen()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case clockMsg:
		if m.screen != screenGame {
			return m, nil
		}
		result := m.game.Tick(time.Now())
		cmds := []tea.Cmd{clockCmd()}
		if cmd := m.resultSoundCmd(result); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case soundMsg:
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+=", "ctrl++":
			m.adjustScale(1)
			return m, nil
		case "ctrl+-", "ctrl+_":
			m.adjustScale(-1)
			return m, nil
		}
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenThemes:
			return m, m.updateThemes(msg)
		case screenConfig:
			return m, m.updateConfig(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenThemes:
		return viewThemes(m)
	case screenConfig:
		return viewConfig(m)
	default:
		return ""
	}
}

// clockCmd schedules the fixed-rate UI clock. Gravity pacing happens inside
// Game.Tick; the clock just has to fire more often than the fall interval.
func clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(time.Time) tea.Msg { return clockMsg{} })
}

func playSound(engine *SoundEngine, event SoundEvent) tea.Cmd {
	return func() tea.Msg {
		if engine != nil {
			engine.Play(event)
		}
		return soundMsg{}
	}
}

// resultSoundCmd picks the sound for a gravity or hard-drop outcome.
func (m *Model) resultSoundCmd(result StepResult) tea.Cmd {
	if !m.config.Sound {
		return nil
	}
	switch {
	case result.GameOver:
		return playSound(m.sound, SoundGameOver)
	case result.Cleared > 0:
		events := []SoundEvent{SoundLine1, SoundLine2, SoundLine3, SoundLine4}
		index := result.Cleared - 1
		if index >= len(events) {
			index = len(events) - 1
		}
		return playSound(m.sound, events[index])
	case result.Locked:
		return playSound(m.sound, SoundLock)
	}
	return nil
}

func (m *Model) adjustScale(delta int) {
	newScale := clampScale(m.config.Scale + delta)
	if newScale != m.config.Scale {
		m.config.Scale = newScale
		_ = saveConfig(m.config)
	}
}

func (m *Model) adjustVolume(delta int) {
	newVolume := clampVolumePercent(m.config.Volume + delta)
	if newVolume == m.config.Volume {
		return
	}
	m.config.Volume = newVolume
	if m.sound != nil {
		m.sound.SetVolume(volumeFromPercent(newVolume))
	}
	if m.music != nil {
		m.music.SetVolume(volumeFromPercent(newVolume))
	}
	_ = saveConfig(m.config)
}

func volumeFromPercent(value int) float64 {
	return float64(clampVolumePercent(value)) / 100
}

func (m *Model) setScreen(screen Screen) tea.Cmd {
	m.screen = screen
	return m.syncMusicForScreen()
}

func (m *Model) syncMusicForScreen() tea.Cmd {
	if m.music == nil {
		return nil
	}
	if !m.config.Music {
		m.music.Stop()
		return nil
	}
	if m.screen == screenGame {
		m.music.Start()
		return nil
	}
	m.music.Stop()
	return nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
			if m.config.Sound {
				cmd = playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
			if m.config.Sound {
				cmd = playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		if m.config.Sound {
			cmd = playSound(m.sound, SoundMenuSelect)
		}
		switch m.menuIndex {
		case 0:
			m.game = NewGame()
			return tea.Batch(cmd, m.setScreen(screenGame), clockCmd())
		case 1:
			return tea.Batch(cmd, m.setScreen(screenThemes))
		case 2:
			return tea.Batch(cmd, m.setScreen(screenConfig))
		case 3:
			return tea.Quit
		}
	case "q", "esc":
		return tea.Quit
	}
	return cmd
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		if m.game.Apply(CmdMoveLeft).Moved && m.config.Sound {
			return playSound(m.sound, SoundMove)
		}
	case "right", "l":
		if m.game.Apply(CmdMoveRight).Moved && m.config.Sound {
			return playSound(m.sound, SoundMove)
		}
	case "down", "j":
		m.game.Apply(CmdSoftDrop)
	case "up", "x":
		if m.game.Apply(CmdRotate).Moved && m.config.Sound {
			return playSound(m.sound, SoundRotate)
		}
	case " ":
		result := m.game.Apply(CmdHardDrop)
		if !m.config.Sound {
			return nil
		}
		switch {
		case result.GameOver:
			return playSound(m.sound, SoundGameOver)
		case result.Cleared > 0:
			return m.resultSoundCmd(result)
		case result.Locked:
			return playSound(m.sound, SoundDrop)
		}
	case "p":
		m.game.Apply(CmdTogglePause)
	case "r":
		m.game.Apply(CmdReset)
	case "q", "esc":
		return m.setScreen(screenMenu)
	}
	return nil
}

func (m *Model) updateThemes(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		m.config.Theme = themes[m.themeIndex].Name
		_ = saveConfig(m.config)
		cmd := m.setScreen(screenMenu)
		if m.config.Sound {
			return tea.Batch(cmd, playSound(m.sound, SoundMenuSelect))
		}
		return cmd
	case "q", "esc":
		return m.setScreen(screenMenu)
	}
	return nil
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		switch m.configIndex {
		case 0:
			m.config.Sound = !m.config.Sound
			if m.sound != nil {
				m.sound.SetEnabled(m.config.Sound)
			}
			_ = saveConfig(m.config)
		case 1:
			m.config.Music = !m.config.Music
			_ = saveConfig(m.config)
			if m.config.Sound {
				return tea.Batch(m.syncMusicForScreen(), playSound(m.sound, SoundMenuSelect))
			}
			return m.syncMusicForScreen()
		case 2:
			m.adjustVolume(5)
		case 3:
			m.config.Shadow = !m.config.Shadow
			_ = saveConfig(m.config)
		case 4:
			m.adjustScale(1)
		}
		if m.config.Sound {
			return playSound(m.sound, SoundMenuSelect)
		}
	case "left", "h":
		if m.configIndex == 2 {
			m.adjustVolume(-5)
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
		if m.configIndex == 4 {
			m.adjustScale(-1)
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "right", "l":
		if m.configIndex == 2 {
			m.adjustVolume(5)
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
		if m.configIndex == 4 {
			m.adjustScale(1)
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "q", "esc":
		return m.setScreen(screenMenu)
	}
	return nil
}

var menuItems = []string{
	"Start Game",
	"Themes",
	"Config",
	"Quit",
}

var configItems = []string{
	"Sound Effects",
	"Music",
	"Volume",
	"Shadow",
	"Game Scale",
}
