package engine

// Controller owns the single active session and the level progression around
// it. Every transition deals a fresh session: moves, slot, selection and
// allowances all start over.
type Controller struct {
	opts    Options
	theme   Theme
	rng     *SimpleRNG
	session *Session
	attempt int
}

// NewController creates a controller. Nothing is dealt until NewLevel.
func NewController(opts Options, theme Theme, seed uint64) *Controller {
	if _, err := ParseTheme(string(theme)); err != nil {
		theme = DefaultTheme
	}
	return &Controller{
		opts:  opts,
		theme: theme,
		rng:   NewRNG(seed),
	}
}

// NewLevel starts level id with the given theme.
func (c *Controller) NewLevel(id int, theme Theme) error {
	level, ok := LevelByID(id)
	if !ok {
		return reject(KindIllegalMove, "no level %d", id)
	}
	if _, err := ParseTheme(string(theme)); err != nil {
		return reject(KindIllegalMove, "%v", err)
	}

	s, err := NewSession(level, theme, c.opts, c.rng)
	if err != nil {
		return err
	}
	c.session = s
	c.theme = theme
	c.attempt++
	return nil
}

// Restart deals the current level again.
func (c *Controller) Restart() error {
	return c.NewLevel(c.LevelID(), c.theme)
}

// NextLevel advances one level, wrapping from the last level to the first.
func (c *Controller) NextLevel() error {
	next := c.LevelID() + 1
	if next > LevelCount() {
		next = 1
	}
	return c.NewLevel(next, c.theme)
}

// PrevLevel goes back one level. On the first level it is refused.
func (c *Controller) PrevLevel() error {
	if c.LevelID() <= 1 {
		return reject(KindInvalidState, "already on the first level")
	}
	return c.NewLevel(c.LevelID()-1, c.theme)
}

// SelectLevel jumps to level id.
func (c *Controller) SelectLevel(id int) error {
	return c.NewLevel(id, c.theme)
}

// ChangeTheme redeals the current level with another theme.
func (c *Controller) ChangeTheme(theme Theme) error {
	return c.NewLevel(c.LevelID(), theme)
}

// Session returns the active session, nil before the first NewLevel.
func (c *Controller) Session() *Session {
	return c.session
}

// LevelID returns the active level id, 1 before the first NewLevel.
func (c *Controller) LevelID() int {
	if c.session == nil {
		return 1
	}
	return c.session.level.ID
}

// Theme returns the theme of the active session.
func (c *Controller) Theme() Theme {
	return c.theme
}

// Attempt counts sessions dealt so far. It changes on every transition.
func (c *Controller) Attempt() int {
	return c.attempt
}
