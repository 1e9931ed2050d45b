package main

type GalleryCmd struct {
	FilterFlags `embed:""`
}

func (cmd *GalleryCmd) Run(g *Globals) error {
	state, err := cmd.state()
	if err != nil {
		return err
	}
	g.gallery().Apply(state, cmd.Page)
	return nil
}
