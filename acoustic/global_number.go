package acoustic

// 乾燥空気の気体定数, J/(kg K)
const SpecificGasConstant = 287.058

// 0 degree C の絶対温度, K
const ZeroCelsius = 273.15

// 0 degree C における音速, m/s
const SoundSpeedAt0C = 331.3

// Sutherland の式の係数, kg/(m s K^0.5)
const SutherlandCoefficient = 1.458e-6

// Sutherland 温度, K
const SutherlandTemperature = 110.4

// 空気の熱伝導率, W/(m K)
const ThermalConductivity = 0.0241

// 空気の定圧比熱, J/(kg K)
const SpecificHeat = 1010.0

// 空気の比熱比, -
const HeatCapacityRatio = 1.4
