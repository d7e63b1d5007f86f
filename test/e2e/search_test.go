package e2e

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/searchspace/backtrack"
	"github.com/katalvlaran/searchspace/frontier"
	"github.com/katalvlaran/searchspace/grid"
	"github.com/katalvlaran/searchspace/problems/queens"
	"github.com/katalvlaran/searchspace/problems/sudoku"
)

var _ = Describe("Backtracking and frontier engines together", func() {
	When("a maze solution seeds a spread simulation", func() {
		var g *grid.Grid

		BeforeEach(func() {
			var err error
			g, err = grid.New([][]int{
				{0, 0, 0},
				{0, 1, 0},
				{0, 0, 0},
			}, grid.DefaultOptions())
			Expect(err).NotTo(HaveOccurred())
		})

		It("routes around the obstacle in 4 steps", func() {
			path, dist, err := g.ShortestPath(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(dist).To(Equal(4))
			Expect(path).To(HaveLen(5))
		})

		It("covers the ring from both path endpoints in 2 rounds", func() {
			rounds, err := g.Spread([]grid.Cell{{X: 0, Y: 0}, {X: 2, Y: 2}})
			Expect(err).NotTo(HaveOccurred())
			Expect(rounds).To(Equal(2))
		})

		It("reports the sentinel once the ring is cut", func() {
			cut, err := grid.New([][]int{
				{0, 1, 0},
				{1, 1, 0},
				{0, 0, 0},
			}, grid.DefaultOptions())
			Expect(err).NotTo(HaveOccurred())

			rounds, err := cut.Spread([]grid.Cell{{X: 0, Y: 0}})
			Expect(err).NotTo(HaveOccurred())
			Expect(rounds).To(Equal(frontier.Unreachable))
		})
	})

	When("both backtracking drivers run the same decision problems", func() {
		It("agrees on the 8-queens solution count", func() {
			p, err := queens.New(8)
			Expect(err).NotTo(HaveOccurred())

			rec, err := backtrack.Search(p, []int(nil), backtrack.FindAll)
			Expect(err).NotTo(HaveOccurred())
			it, err := backtrack.SearchIterative(p, []int(nil), backtrack.FindAll)
			Expect(err).NotTo(HaveOccurred())

			Expect(rec.Solutions).To(HaveLen(92))
			Expect(it.Solutions).To(Equal(rec.Solutions))
		})

		It("solves a sudoku and keeps every given digit", func() {
			board := sudoku.Board{}
			board[0][0] = 7
			board[4][4] = 3

			solved, err := sudoku.Solve(board)
			Expect(err).NotTo(HaveOccurred())
			Expect(solved[0][0]).To(Equal(7))
			Expect(solved[4][4]).To(Equal(3))
			for r := 0; r < sudoku.Size; r++ {
				for c := 0; c < sudoku.Size; c++ {
					Expect(solved[r][c]).To(BeNumerically(">=", 1))
					Expect(solved[r][c]).To(BeNumerically("<=", 9))
				}
			}
		})
	})
})
