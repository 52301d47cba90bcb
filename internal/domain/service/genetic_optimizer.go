package service

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"sort"

	"Lakbay-App/internal/domain/helper"
	"Lakbay-App/internal/domain/model"
)

// GeneticConfig 遺伝的アルゴリズムのハイパーパラメータ
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	CrossoverRate  float64
	EliteCount     int
	// ConvergenceWindow 世代前との比較で早期終了を判定する窓幅
	ConvergenceWindow int
}

// DefaultGeneticConfig 標準のハイパーパラメータを返す
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize:    50,
		Generations:       100,
		MutationRate:      0.2,
		CrossoverRate:     0.8,
		EliteCount:        5,
		ConvergenceWindow: 10,
	}
}

// GeneticItineraryOptimizer はアクティビティの日割り当てを進化させる遺伝的オプティマイザ
// 乱数源は注入可能で、テストではシードを固定して決定的に実行できる
type GeneticItineraryOptimizer struct {
	config GeneticConfig
	rng    *rand.Rand
}

// NewGeneticItineraryOptimizer は新しいオプティマイザを作成する
func NewGeneticItineraryOptimizer(config GeneticConfig, rng *rand.Rand) *GeneticItineraryOptimizer {
	return &GeneticItineraryOptimizer{config: config, rng: rng}
}

// Optimize はアクティビティプールから最適化済みの複数日プランを生成する
// プールが空の場合はエラーを返す（呼び出し側は非GA経路にフォールバックすること）
func (o *GeneticItineraryOptimizer) Optimize(activities []*model.Activity, params *model.TripParameters) (*model.OptimizedItinerary, error) {
	if len(activities) == 0 {
		return nil, errors.New("アクティビティプールが空のためGA最適化を実行できません")
	}

	numDays := params.NumDays()
	pace := params.GetPreferences().NormalizedPace()
	evaluator := newFitnessEvaluator(params)

	log.Printf("🧬 GA最適化開始: %dアクティビティ, %d日間, 個体数%d", len(activities), numDays, o.config.PopulationSize)

	// 初期集団の生成と評価
	population := make([]*model.ItineraryCandidate, o.config.PopulationSize)
	for i := range population {
		population[i] = o.randomCandidate(activities, numDays, pace)
		evaluator.evaluate(population[i])
	}

	bestHistory := make([]float64, 0, o.config.Generations)
	generations := 0

	for gen := 0; gen < o.config.Generations; gen++ {
		generations = gen + 1
		population = o.nextGeneration(population, evaluator, numDays, pace)

		best := bestOf(population)
		bestHistory = append(bestHistory, best.Fitness)

		if o.hasConverged(bestHistory) {
			log.Printf("✅ GA早期収束: 世代%d, 最良適応度%.2f", generations, best.Fitness)
			break
		}
	}

	best := bestOf(population)
	log.Printf("🏆 GA最適化完了: %d世代, 適応度%.2f (%d件選択)", generations, best.Fitness, len(best.Activities))

	itinerary := candidateToItinerary(best, numDays)
	itinerary.Generations = generations
	return itinerary, nil
}

// dayCapacity は日ごとの最大アクティビティ数を返す
// 到着日は2件、出発日は1件、中日はペース+1（±1の揺らぎを許容）
func dayCapacity(day, numDays, pace int) int {
	if numDays == 1 {
		return pace + 1
	}
	switch day {
	case 1:
		return 2
	case numDays:
		return 1
	default:
		return pace + 1
	}
}

func capacitySum(numDays, pace int) int {
	total := 0
	for day := 1; day <= numDays; day++ {
		total += dayCapacity(day, numDays, pace)
	}
	return total
}

// randomCandidate はランダムな候補解を生成する
// 容量合計の80〜100%を目標件数とし、残容量のある日から貪欲に配置する
func (o *GeneticItineraryOptimizer) randomCandidate(pool []*model.Activity, numDays, pace int) *model.ItineraryCandidate {
	capTotal := capacitySum(numDays, pace)
	target := int(float64(capTotal) * (0.8 + o.rng.Float64()*0.2))
	if target > len(pool) {
		target = len(pool)
	}
	if target < 1 {
		target = 1
	}

	// プールをシャッフルして先頭から採用
	shuffled := make([]*model.Activity, len(pool))
	copy(shuffled, pool)
	o.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	selected := shuffled[:target]

	remaining := make([]int, numDays+1) // 1始まり
	for day := 1; day <= numDays; day++ {
		remaining[day] = dayCapacity(day, numDays, pace)
	}

	assignments := make([]int, len(selected))
	for i := range selected {
		day := o.pickDayWithCapacity(remaining, numDays)
		assignments[i] = day
		if remaining[day] > 0 {
			remaining[day]--
		}
	}

	return &model.ItineraryCandidate{Activities: selected, DayAssignments: assignments}
}

// pickDayWithCapacity は残容量のある日をランダムに選ぶ
// 全ての日が埋まっている場合は中日のどれかに溢れさせる
func (o *GeneticItineraryOptimizer) pickDayWithCapacity(remaining []int, numDays int) int {
	var available []int
	for day := 1; day <= numDays; day++ {
		if remaining[day] > 0 {
			available = append(available, day)
		}
	}
	if len(available) > 0 {
		return available[o.rng.Intn(len(available))]
	}
	if numDays <= 2 {
		return 1
	}
	return 2 + o.rng.Intn(numDays-2) // 中日 [2, numDays-1]
}

// nextGeneration は選択・交叉・突然変異・エリート保存で次世代を生成する
func (o *GeneticItineraryOptimizer) nextGeneration(population []*model.ItineraryCandidate, evaluator *fitnessEvaluator, numDays, pace int) []*model.ItineraryCandidate {
	sorted := make([]*model.ItineraryCandidate, len(population))
	copy(sorted, population)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness > sorted[j].Fitness })

	next := make([]*model.ItineraryCandidate, 0, o.config.PopulationSize)

	// エリート保存
	eliteCount := o.config.EliteCount
	if eliteCount > len(sorted) {
		eliteCount = len(sorted)
	}
	for i := 0; i < eliteCount; i++ {
		next = append(next, sorted[i].Clone())
	}

	for len(next) < o.config.PopulationSize {
		parent1 := o.tournamentSelect(population)
		parent2 := o.tournamentSelect(population)

		child1, child2 := parent1.Clone(), parent2.Clone()
		if o.rng.Float64() < o.config.CrossoverRate {
			child1, child2 = o.crossover(parent1, parent2, numDays)
		}

		for _, child := range []*model.ItineraryCandidate{child1, child2} {
			if o.rng.Float64() < o.config.MutationRate {
				o.mutate(child, numDays, pace)
			}
			evaluator.evaluate(child)
			if len(next) < o.config.PopulationSize {
				next = append(next, child)
			}
		}
	}

	return next
}

// tournamentSelect はサイズ3のトーナメント選択で適応度の高い個体を選ぶ
func (o *GeneticItineraryOptimizer) tournamentSelect(population []*model.ItineraryCandidate) *model.ItineraryCandidate {
	const tournamentSize = 3
	best := population[o.rng.Intn(len(population))]
	for i := 1; i < tournamentSize; i++ {
		challenger := population[o.rng.Intn(len(population))]
		if challenger.Fitness > best.Fitness {
			best = challenger
		}
	}
	return best
}

// crossover は日インデックスのカットポイント交叉を行う
// カット前の日のアクティビティを片親から、カット以降をもう一方から引き継ぐことで
// 良い部分プランの日単位の局所性を保存する
func (o *GeneticItineraryOptimizer) crossover(parent1, parent2 *model.ItineraryCandidate, numDays int) (*model.ItineraryCandidate, *model.ItineraryCandidate) {
	if numDays < 2 {
		return parent1.Clone(), parent2.Clone()
	}
	cut := 2 + o.rng.Intn(numDays-1) // [2, numDays]

	child1 := o.mergeByCut(parent1, parent2, cut)
	child2 := o.mergeByCut(parent2, parent1, cut)
	return child1, child2
}

// mergeByCut はカット前を first から、カット以降を second から取り込む
// 同一アクティビティが両親に現れる場合は先勝ちで重複を除外する
func (o *GeneticItineraryOptimizer) mergeByCut(first, second *model.ItineraryCandidate, cut int) *model.ItineraryCandidate {
	child := &model.ItineraryCandidate{}
	seen := make(map[string]struct{})

	appendFrom := func(c *model.ItineraryCandidate, keep func(day int) bool) {
		for i, a := range c.Activities {
			day := c.DayAssignments[i]
			if !keep(day) {
				continue
			}
			key := a.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			child.Activities = append(child.Activities, a)
			child.DayAssignments = append(child.DayAssignments, day)
		}
	}

	appendFrom(first, func(day int) bool { return day < cut })
	appendFrom(second, func(day int) bool { return day >= cut })

	// 交叉の結果空になった場合は第一親をそのまま引き継ぐ
	if len(child.Activities) == 0 {
		return first.Clone()
	}
	return child
}

// mutate は3種類の突然変異オペレータから一様に1つを適用する
func (o *GeneticItineraryOptimizer) mutate(c *model.ItineraryCandidate, numDays, pace int) {
	if len(c.Activities) == 0 {
		return
	}
	switch o.rng.Intn(3) {
	case 0:
		o.mutateReassign(c, numDays, pace)
	case 1:
		o.mutateSwap(c)
	case 2:
		o.mutateRemove(c, numDays)
	}
}

// mutateReassign は1アクティビティを容量に空きのある別の日へ移す
func (o *GeneticItineraryOptimizer) mutateReassign(c *model.ItineraryCandidate, numDays, pace int) {
	idx := o.rng.Intn(len(c.DayAssignments))
	current := c.DayAssignments[idx]

	var candidates []int
	for day := 1; day <= numDays; day++ {
		if day != current && c.CountForDay(day) < dayCapacity(day, numDays, pace) {
			candidates = append(candidates, day)
		}
	}
	if len(candidates) == 0 {
		return
	}
	c.DayAssignments[idx] = candidates[o.rng.Intn(len(candidates))]
}

// mutateSwap は2アクティビティの日割り当てを入れ替える
func (o *GeneticItineraryOptimizer) mutateSwap(c *model.ItineraryCandidate) {
	if len(c.DayAssignments) < 2 {
		return
	}
	i := o.rng.Intn(len(c.DayAssignments))
	j := o.rng.Intn(len(c.DayAssignments))
	c.DayAssignments[i], c.DayAssignments[j] = c.DayAssignments[j], c.DayAssignments[i]
}

// mutateRemove は1アクティビティを削除する
// 各日に最低1件を保証するため、件数が日数を上回る場合のみ実行する
func (o *GeneticItineraryOptimizer) mutateRemove(c *model.ItineraryCandidate, numDays int) {
	if len(c.Activities) <= numDays {
		return
	}
	idx := o.rng.Intn(len(c.Activities))
	c.Activities = append(c.Activities[:idx], c.Activities[idx+1:]...)
	c.DayAssignments = append(c.DayAssignments[:idx], c.DayAssignments[idx+1:]...)
}

// hasConverged は早期終了条件を判定する
// 窓幅前との相対改善が1%未満、または直近窓の最良適応度の分散が1e-4未満で収束とみなす
func (o *GeneticItineraryOptimizer) hasConverged(bestHistory []float64) bool {
	window := o.config.ConvergenceWindow
	if window <= 0 || len(bestHistory) < window {
		return false
	}

	current := bestHistory[len(bestHistory)-1]
	previous := bestHistory[len(bestHistory)-window]
	if previous > 0 {
		improvement := (current - previous) / previous
		if improvement < 0.01 {
			return true
		}
	}

	recent := bestHistory[len(bestHistory)-window:]
	mean := 0.0
	for _, v := range recent {
		mean += v
	}
	mean /= float64(window)
	variance := 0.0
	for _, v := range recent {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(window)
	return variance < 1e-4
}

func bestOf(population []*model.ItineraryCandidate) *model.ItineraryCandidate {
	best := population[0]
	for _, c := range population[1:] {
		if c.Fitness > best.Fitness {
			best = c
		}
	}
	return best
}

// candidateToItinerary は候補解を日別プランに変換する
// 各日のアクティビティは既知の推奨時間帯でソートしてから整形する
func candidateToItinerary(best *model.ItineraryCandidate, numDays int) *model.OptimizedItinerary {
	itinerary := &model.OptimizedItinerary{
		Fitness:         best.Fitness,
		TotalActivities: len(best.Activities),
	}

	totalCost := 0.0
	for _, a := range best.Activities {
		totalCost += helper.ParsePrice(a.TicketPrice)
	}
	itinerary.TotalCost = math.Round(totalCost*100) / 100

	slotIndex := func(a *model.Activity) int {
		slots := helper.PreferredSlots(a.Category)
		if a.PreferredTime != "" {
			for i, s := range model.SlotOrder {
				if string(s) == a.PreferredTime {
					return i
				}
			}
		}
		if len(slots) > 0 {
			for i, s := range model.SlotOrder {
				if s == slots[0] {
					return i
				}
			}
		}
		return len(model.SlotOrder)
	}

	for day := 1; day <= numDays; day++ {
		activities := best.ActivitiesForDay(day)
		sort.SliceStable(activities, func(i, j int) bool {
			return slotIndex(activities[i]) < slotIndex(activities[j])
		})

		plan := model.DayPlan{Day: day, Theme: dominantTheme(activities)}
		for _, a := range activities {
			plan.Activities = append(plan.Activities, model.ScheduledActivity{Activity: a})
		}
		itinerary.DayPlans = append(itinerary.DayPlans, plan)
	}

	return itinerary
}

// dominantTheme はその日の多数派カテゴリからテーマラベルを導く
func dominantTheme(activities []*model.Activity) string {
	if len(activities) == 0 {
		return "rest day"
	}
	counts := make(map[model.ActivityCategory]int)
	for _, a := range activities {
		counts[a.Category]++
	}
	var topCategory model.ActivityCategory
	topCount := 0
	for category, count := range counts {
		if count > topCount {
			topCategory, topCount = category, count
		}
	}
	switch topCategory {
	case model.CategoryRestaurant:
		return "food crawl"
	case model.CategoryMuseum:
		return "culture & heritage"
	case model.CategoryPark:
		return "nature day"
	case model.CategoryShopping:
		return "shopping day"
	case model.CategoryEntertainment:
		return "night out"
	default:
		return "sightseeing"
	}
}
