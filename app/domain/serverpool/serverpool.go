package serverpool

// Server is one labeled relay endpoint of a deployment brand.
type Server struct {
	Label string
	URL   string
}
